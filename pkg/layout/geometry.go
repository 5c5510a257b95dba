package layout

import "fmt"

// Size is a resolved extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Offset is a cell position, relative to whatever the caller measures from.
type Offset struct {
	X int
	Y int
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromOffsetSize builds a Rect positioned at o with extent s.
func RectFromOffsetSize(o Offset, s Size) Rect {
	return Rect{X: o.X, Y: o.Y, Width: s.Width, Height: s.Height}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty returns true if the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect positioned at r's origin if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Deflate shrinks the rectangle by the given insets, never below zero area.
func (r Rect) Deflate(in Insets) Rect {
	out := Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Horizontal(),
		Height: r.Height - in.Vertical(),
	}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Insets describes space reserved on each side of a box.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v int) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricInsets returns insets with the given horizontal and vertical values.
func SymmetricInsets(horizontal, vertical int) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the total horizontal inset.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the total vertical inset.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}
