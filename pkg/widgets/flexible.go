package widgets

import (
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// FlexFit controls how a flexible child fills the space it is given.
type FlexFit int

const (
	// FlexFitTight forces the child to fill its share.
	FlexFitTight FlexFit = iota
	// FlexFitLoose lets the child be smaller than its share.
	FlexFitLoose
)

// Flexible lets its child take a share of the space left in a [Row] or
// [Column] after the inflexible children have been laid out.
//
//	Row[Msg]{Children: []core.Component[Msg]{
//	    Flexible[Msg]{Flex: 1, Child: left},  // 1/3 of the remaining width
//	    Flexible[Msg]{Flex: 2, Child: right}, // 2/3 of the remaining width
//	}}
//
// Under an unbounded main axis the child gets its minimum instead.
type Flexible[M any] struct {
	// Flex is the child's weight. Values below 1 count as 1.
	Flex  int
	Fit   FlexFit
	Child core.Component[M]
}

func (f Flexible[M]) flexFactor() int {
	return max(f.Flex, 1)
}

func (f Flexible[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	cb := bounds
	if f.Fit == FlexFitLoose {
		cb = bounds.Loosen()
	}
	size := core.LayoutChild(f.Child, cb, node.NewChild())
	return bounds.Constrain(size)
}

func (f Flexible[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	core.DrawChild(f.Child, sc, dc.Child(0), frame)
}
