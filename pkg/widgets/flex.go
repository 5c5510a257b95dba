package widgets

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Row lays out its children horizontally in a single run.
//
// Children wrapped in [Flexible] share the width left over after every
// other child has been sized, in proportion to their Flex factors.
// By default (MainAxisSizeMax) the row fills the available width.
//
//	widgets.Row[Msg]{
//	    Children: []core.Component[Msg]{
//	        widgets.Text[Msg]{Content: "cpu"},
//	        widgets.Flexible[Msg]{Flex: 1, Child: chart},
//	    },
//	}
type Row[M any] struct {
	Children           []core.Component[M]
	MainAxisAlignment  layout.MainAxisAlignment
	CrossAxisAlignment layout.CrossAxisAlignment
	MainAxisSize       layout.MainAxisSize
	// Gap is the number of blank cells between adjacent children.
	Gap int
}

// RowOf creates a Row with the given alignments and children.
func RowOf[M any](alignment layout.MainAxisAlignment, crossAlignment layout.CrossAxisAlignment, size layout.MainAxisSize, children ...core.Component[M]) Row[M] {
	return Row[M]{
		Children:           children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
		MainAxisSize:       size,
	}
}

func (r Row[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	return flexLayout(r.flex(), r.Children, bounds, node)
}

func (r Row[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	drawChildren(r.Children, sc, dc, frame)
}

func (r Row[M]) flex() layout.Flex {
	return layout.Flex{
		Axis:               layout.AxisHorizontal,
		MainAxisAlignment:  r.MainAxisAlignment,
		CrossAxisAlignment: r.CrossAxisAlignment,
		MainAxisSize:       r.MainAxisSize,
		Gap:                r.Gap,
	}
}

// Column lays out its children vertically in a single run. See [Row].
type Column[M any] struct {
	Children           []core.Component[M]
	MainAxisAlignment  layout.MainAxisAlignment
	CrossAxisAlignment layout.CrossAxisAlignment
	MainAxisSize       layout.MainAxisSize
	Gap                int
}

// ColumnOf creates a Column with the given alignments and children.
func ColumnOf[M any](alignment layout.MainAxisAlignment, crossAlignment layout.CrossAxisAlignment, size layout.MainAxisSize, children ...core.Component[M]) Column[M] {
	return Column[M]{
		Children:           children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
		MainAxisSize:       size,
	}
}

func (c Column[M]) Layout(bounds layout.Bounds, node *layout.Node) layout.Size {
	return flexLayout(c.flex(), c.Children, bounds, node)
}

func (c Column[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	drawChildren(c.Children, sc, dc, frame)
}

func (c Column[M]) flex() layout.Flex {
	return layout.Flex{
		Axis:               layout.AxisVertical,
		MainAxisAlignment:  c.MainAxisAlignment,
		CrossAxisAlignment: c.CrossAxisAlignment,
		MainAxisSize:       c.MainAxisSize,
		Gap:                c.Gap,
	}
}

// flexFactor is implemented by children that take part in flex
// distribution.
type flexFactor interface {
	flexFactor() int
}

func flexLayout[M any](f layout.Flex, children []core.Component[M], bounds layout.Bounds, node *layout.Node) layout.Size {
	items := make([]layout.FlexItem, len(children))
	nodes := make([]*layout.Node, len(children))
	for i, child := range children {
		child := child
		n := node.NewChild()
		nodes[i] = n
		weight := 0
		if ff, ok := child.(flexFactor); ok {
			weight = ff.flexFactor()
		}
		items[i] = layout.FlexItem{
			Weight: weight,
			Layout: func(b layout.Bounds) layout.Size {
				return core.LayoutChild(child, b, n)
			},
		}
	}

	res := f.Distribute(bounds, items)
	for i, n := range nodes {
		n.SetOffset(res.Offsets[i])
	}
	if res.UnboundedFlex {
		warnUnboundedFlex(f.Axis, children)
	}
	return res.Size
}

func drawChildren[M any](children []core.Component[M], sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	for i, child := range children {
		core.DrawChild(child, sc, dc.Child(i), frame)
	}
}

// unboundedWarned holds the containers already warned about, keyed by
// axis and child types.
var unboundedWarned sync.Map

func warnUnboundedFlex[M any](axis layout.Axis, children []core.Component[M]) {
	var sb strings.Builder
	sb.WriteString(axis.String())
	for _, c := range children {
		fmt.Fprintf(&sb, "|%T", c)
	}
	if _, seen := unboundedWarned.LoadOrStore(sb.String(), struct{}{}); seen {
		return
	}
	zap.L().Warn("flexible children cannot flex under an unbounded main axis; they get their minimum",
		zap.Stringer("axis", axis),
		zap.Int("children", len(children)),
	)
}
