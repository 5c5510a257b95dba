// Package layout holds the cell geometry, bounds and layout tree shared by
// components, and the flex space distribution used by rows and columns.
package layout

import (
	"fmt"
	"math"
)

// Unbounded marks a missing maximum on an axis, as produced by scrollable
// containers. It is a sentinel, not a size: arithmetic on bounds keeps it
// intact and Constrain never returns it as a dimension unless the child
// asked for it.
const Unbounded = math.MaxInt32

// Bounds is the min/max constraint box a parent hands to a child.
//
// A well-formed Bounds has non-negative values and min <= max on each axis.
// Malformed bounds are never rejected; Normalize repairs them and every
// operation in this package normalizes first.
type Bounds struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns bounds that only admit the given size.
func Tight(size Size) Bounds {
	return Bounds{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// TightFor returns bounds with tight width and height.
func TightFor(width, height int) Bounds {
	return Tight(Size{Width: width, Height: height})
}

// Loose returns bounds from zero up to the given size.
func Loose(size Size) Bounds {
	return Bounds{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Expand returns bounds with no maximum on either axis.
func Expand() Bounds {
	return Bounds{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Normalize repairs malformed bounds: negative values become zero and a
// minimum above its maximum collapses onto the maximum.
func (b Bounds) Normalize() Bounds {
	b.MinWidth = max(b.MinWidth, 0)
	b.MaxWidth = max(b.MaxWidth, 0)
	b.MinHeight = max(b.MinHeight, 0)
	b.MaxHeight = max(b.MaxHeight, 0)
	b.MinWidth = min(b.MinWidth, b.MaxWidth)
	b.MinHeight = min(b.MinHeight, b.MaxHeight)
	return b
}

// Valid reports whether the bounds are already normalized.
func (b Bounds) Valid() bool {
	return b == b.Normalize()
}

// HasBoundedWidth reports whether the maximum width is finite.
func (b Bounds) HasBoundedWidth() bool {
	return b.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether the maximum height is finite.
func (b Bounds) HasBoundedHeight() bool {
	return b.MaxHeight < Unbounded
}

// IsTight reports whether only one size satisfies the bounds.
func (b Bounds) IsTight() bool {
	b = b.Normalize()
	return b.MinWidth == b.MaxWidth && b.MinHeight == b.MaxHeight
}

// Constrain clamps size into the bounds on both axes.
func (b Bounds) Constrain(size Size) Size {
	b = b.Normalize()
	return Size{
		Width:  clamp(size.Width, b.MinWidth, b.MaxWidth),
		Height: clamp(size.Height, b.MinHeight, b.MaxHeight),
	}
}

// ConstrainWidth clamps a width into the horizontal bounds.
func (b Bounds) ConstrainWidth(width int) int {
	b = b.Normalize()
	return clamp(width, b.MinWidth, b.MaxWidth)
}

// ConstrainHeight clamps a height into the vertical bounds.
func (b Bounds) ConstrainHeight(height int) int {
	b = b.Normalize()
	return clamp(height, b.MinHeight, b.MaxHeight)
}

// Satisfies reports whether size lies within the bounds.
func (b Bounds) Satisfies(size Size) bool {
	b = b.Normalize()
	return size.Width >= b.MinWidth && size.Width <= b.MaxWidth &&
		size.Height >= b.MinHeight && size.Height <= b.MaxHeight
}

// Smallest returns the smallest size the bounds admit.
func (b Bounds) Smallest() Size {
	b = b.Normalize()
	return Size{Width: b.MinWidth, Height: b.MinHeight}
}

// Biggest returns the largest size the bounds admit. Unbounded axes
// collapse to their minimum, since no finite biggest exists.
func (b Bounds) Biggest() Size {
	b = b.Normalize()
	s := Size{Width: b.MaxWidth, Height: b.MaxHeight}
	if !b.HasBoundedWidth() {
		s.Width = b.MinWidth
	}
	if !b.HasBoundedHeight() {
		s.Height = b.MinHeight
	}
	return s
}

// Loosen drops the minimums, keeping the maximums.
func (b Bounds) Loosen() Bounds {
	b = b.Normalize()
	b.MinWidth = 0
	b.MinHeight = 0
	return b
}

// Deflate shrinks the bounds by the insets. Unbounded maximums stay
// unbounded; finite values never go below zero.
func (b Bounds) Deflate(in Insets) Bounds {
	b = b.Normalize()
	h, v := in.Horizontal(), in.Vertical()
	out := Bounds{
		MinWidth:  max(b.MinWidth-h, 0),
		MaxWidth:  shrink(b.MaxWidth, h),
		MinHeight: max(b.MinHeight-v, 0),
		MaxHeight: shrink(b.MaxHeight, v),
	}
	return out.Normalize()
}

// Enforce returns bounds that respect both b and outer: every size
// satisfying the result also satisfies outer. Children use it to derive
// constraints that never exceed their parent's.
func (b Bounds) Enforce(outer Bounds) Bounds {
	b = b.Normalize()
	outer = outer.Normalize()
	return Bounds{
		MinWidth:  clamp(b.MinWidth, outer.MinWidth, outer.MaxWidth),
		MaxWidth:  clamp(b.MaxWidth, outer.MinWidth, outer.MaxWidth),
		MinHeight: clamp(b.MinHeight, outer.MinHeight, outer.MaxHeight),
		MaxHeight: clamp(b.MaxHeight, outer.MinHeight, outer.MaxHeight),
	}
}

// WithMaxWidth returns a copy with a new maximum width, keeping min <= max.
func (b Bounds) WithMaxWidth(width int) Bounds {
	b.MaxWidth = width
	return b.Normalize()
}

// WithMaxHeight returns a copy with a new maximum height, keeping min <= max.
func (b Bounds) WithMaxHeight(height int) Bounds {
	b.MaxHeight = height
	return b.Normalize()
}

// TightenWidth fixes the width, clamped into the current horizontal range.
func (b Bounds) TightenWidth(width int) Bounds {
	b = b.Normalize()
	w := clamp(width, b.MinWidth, b.MaxWidth)
	b.MinWidth, b.MaxWidth = w, w
	return b
}

// TightenHeight fixes the height, clamped into the current vertical range.
func (b Bounds) TightenHeight(height int) Bounds {
	b = b.Normalize()
	h := clamp(height, b.MinHeight, b.MaxHeight)
	b.MinHeight, b.MaxHeight = h, h
	return b
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(w %s, h %s)", axisString(b.MinWidth, b.MaxWidth), axisString(b.MinHeight, b.MaxHeight))
}

func axisString(lo, hi int) string {
	if hi >= Unbounded {
		return fmt.Sprintf("%d..inf", lo)
	}
	if lo == hi {
		return fmt.Sprintf("=%d", lo)
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func shrink(limit, by int) int {
	if limit >= Unbounded {
		return Unbounded
	}
	return max(limit-by, 0)
}
