package widgets

import (
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Padding adds empty space around its child.
//
// The child is constrained to the space left after padding is applied.
// Without a child, Padding is an empty box of the padding size.
//
//	Padding[Msg]{Padding: layout.UniformInsets(1), Child: child}
//	Padding[Msg]{Padding: layout.SymmetricInsets(2, 0), Child: child}
type Padding[M any] struct {
	Padding layout.Insets
	Child   core.Component[M]
}

func (p Padding[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	child := node.NewChild()
	child.SetOffset(layout.Offset{X: p.Padding.Left, Y: p.Padding.Top})
	childSize := core.LayoutChild(p.Child, bounds.Deflate(p.Padding), child)
	return bounds.Constrain(layout.Size{
		Width:  childSize.Width + p.Padding.Horizontal(),
		Height: childSize.Height + p.Padding.Vertical(),
	})
}

func (p Padding[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	core.DrawChild(p.Child, sc, dc.Child(0), frame)
}
