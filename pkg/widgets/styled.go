package widgets

import (
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Styled merges Style into the style its subtree inherits. With Fill set
// it also paints its whole region in the merged style first, which is how
// a panel gets a background color.
type Styled[M any] struct {
	Style rendering.Style
	Fill  bool
	Child core.Component[M]
}

func (s Styled[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	if s.Child == nil {
		return bounds.Biggest()
	}
	return core.LayoutChild(s.Child, bounds, node.NewChild())
}

func (s Styled[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	dc = dc.WithStyle(s.Style)
	if s.Fill {
		dc.Fill(frame, ' ')
	}
	core.DrawChild(s.Child, sc, dc.Child(0), frame)
}
