// Package rendering is the character-grid backend: frames, styles, colors
// and width-aware text.
package rendering

import "github.com/go-drift/cellkit/pkg/layout"

// Frame is the paint capability handed to draw calls for one frame.
// Cells outside the frame are ignored, never an error.
type Frame interface {
	Size() layout.Size
	SetCell(x, y int, r rune, style Style)
}

// Backend is a character-grid target that can present a finished frame.
type Backend interface {
	Frame
	// Clear resets every cell to a blank with the default style.
	Clear()
	// Show presents the cells painted since the last Show.
	Show() error
}

// Primitive paints itself into a region of a frame.
type Primitive interface {
	Paint(frame Frame, region layout.Rect)
}

// Paint paints p into region, clipped to the frame. Zero-area regions are
// skipped.
func Paint(frame Frame, region layout.Rect, p Primitive) {
	if frame == nil || p == nil {
		return
	}
	size := frame.Size()
	region = region.Intersect(layout.Rect{Width: size.Width, Height: size.Height})
	if region.Empty() {
		return
	}
	p.Paint(Clip(frame, region), region)
}

// Clip returns a frame that drops writes outside region.
func Clip(frame Frame, region layout.Rect) Frame {
	if c, ok := frame.(*clipped); ok {
		return &clipped{frame: c.frame, region: c.region.Intersect(region)}
	}
	return &clipped{frame: frame, region: region}
}

type clipped struct {
	frame  Frame
	region layout.Rect
}

func (c *clipped) Size() layout.Size {
	return c.frame.Size()
}

func (c *clipped) SetCell(x, y int, r rune, style Style) {
	if !c.region.Contains(x, y) {
		return
	}
	c.frame.SetCell(x, y, r, style)
}

// Fill paints every cell of the region with the same rune and style.
type Fill struct {
	Rune  rune
	Style Style
}

func (f Fill) Paint(frame Frame, region layout.Rect) {
	r := f.Rune
	if r == 0 {
		r = ' '
	}
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			frame.SetCell(x, y, r, f.Style)
		}
	}
}

// BoxRunes is the set of runes used to draw a frame around a region.
type BoxRunes struct {
	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// Box border rune sets.
var (
	BoxSingle  = BoxRunes{'─', '│', '┌', '┐', '└', '┘'}
	BoxRounded = BoxRunes{'─', '│', '╭', '╮', '╰', '╯'}
	BoxDouble  = BoxRunes{'═', '║', '╔', '╗', '╚', '╝'}
)

// Box paints a one-cell border along the edges of the region.
type Box struct {
	Runes BoxRunes
	Style Style
}

func (b Box) Paint(frame Frame, region layout.Rect) {
	runes := b.Runes
	if runes == (BoxRunes{}) {
		runes = BoxSingle
	}
	left, top := region.X, region.Y
	right, bottom := region.Right()-1, region.Bottom()-1
	for x := left; x <= right; x++ {
		frame.SetCell(x, top, runes.Horizontal, b.Style)
		frame.SetCell(x, bottom, runes.Horizontal, b.Style)
	}
	for y := top; y <= bottom; y++ {
		frame.SetCell(left, y, runes.Vertical, b.Style)
		frame.SetCell(right, y, runes.Vertical, b.Style)
	}
	if right > left && bottom > top {
		frame.SetCell(left, top, runes.TopLeft, b.Style)
		frame.SetCell(right, top, runes.TopRight, b.Style)
		frame.SetCell(left, bottom, runes.BottomLeft, b.Style)
		frame.SetCell(right, bottom, runes.BottomRight, b.Style)
	}
}
