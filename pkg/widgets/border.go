package widgets

import (
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Border draws a box around its child, with an optional title set into the
// top edge. The child gets the region inside the frame.
type Border[M any] struct {
	Title string
	// Runes selects the line set; the zero value uses rendering.BoxSingle.
	Runes rendering.BoxRunes
	Style rendering.Style
	// TitleStyle is merged over Style for the title.
	TitleStyle rendering.Style
	Child      core.Component[M]
}

var borderInsets = layout.UniformInsets(1)

func (b Border[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	child := node.NewChild()
	child.SetOffset(layout.Offset{X: 1, Y: 1})
	var inner layout.Size
	if b.Child != nil {
		inner = core.LayoutChild(b.Child, bounds.Deflate(borderInsets), child)
	}
	size := layout.Size{Width: inner.Width + 2, Height: inner.Height + 2}
	if b.Child == nil {
		size = bounds.Biggest()
	}
	return bounds.Constrain(size)
}

func (b Border[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	dc = dc.WithStyle(b.Style)
	dc.Paint(frame, rendering.Box{Runes: b.Runes, Style: dc.Style()})

	// The title keeps a corner and one edge cell free on each side.
	region := dc.Region()
	if width := region.Width - 4; b.Title != "" && width > 2 {
		title := " " + rendering.Truncate(b.Title, width-2, "…") + " "
		rendering.DrawText(rendering.Clip(frame, region), region.X+2, region.Y, width, title, b.TitleStyle.Merge(dc.Style()))
	}
	core.DrawChild(b.Child, sc, dc.Child(0), frame)
}
