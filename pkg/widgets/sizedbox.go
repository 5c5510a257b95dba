package widgets

import (
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// SizedBox forces its child to a width and/or height, within the parent's
// bounds. A zero dimension is taken from the child, or is zero without one.
//
//	SizedBox[Msg]{Height: 3, Child: chart}
//	SizedBox[Msg]{Width: 2} // horizontal spacer
type SizedBox[M any] struct {
	Width  int
	Height int
	Child  core.Component[M]
}

// HSpace returns a horizontal spacer of width cells.
func HSpace[M any](width int) SizedBox[M] {
	return SizedBox[M]{Width: width}
}

// VSpace returns a vertical spacer of height cells.
func VSpace[M any](height int) SizedBox[M] {
	return SizedBox[M]{Height: height}
}

func (s SizedBox[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	cb := bounds
	if s.Width > 0 {
		cb = cb.TightenWidth(s.Width)
	}
	if s.Height > 0 {
		cb = cb.TightenHeight(s.Height)
	}
	if s.Child == nil {
		return cb.Smallest()
	}
	return core.LayoutChild(s.Child, cb, node.NewChild())
}

func (s SizedBox[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	core.DrawChild(s.Child, sc, dc.Child(0), frame)
}
