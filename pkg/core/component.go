package core

import (
	"fmt"

	"github.com/go-drift/cellkit/pkg/errors"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Component is a node of the render tree. M is the application message
// type components may send while drawing.
//
// Layout sizes the component within bounds, laying out children with
// LayoutChild on nodes created from node, and returns a size satisfying
// bounds. It must be deterministic and must not touch state.
//
// Draw paints into dc.Region() and hands each child the context returned
// by dc.ForChild for the child's node. It must not change layout.
type Component[M any] interface {
	Layout(bounds layout.Bounds, node *layout.Node) layout.Size
	Draw(sc *StateContext[M], dc *DrawContext, frame rendering.Frame)
}

// StatefulComponent is a Component with a build step. Build is called on
// the zero value of the type, claims the component's state through ctx and
// returns the component ready for layout.
type StatefulComponent[M, P, Self any] interface {
	Component[M]
	Build(ctx *BuildContext, props P) Self
}

// Build runs the build step of the stateful component type C with props.
func Build[M, P any, C StatefulComponent[M, P, C]](ctx *BuildContext, props P) C {
	ctx.scope.check()
	var zero C
	return zero.Build(ctx, props)
}

// LayoutChild lays c out into node within bounds. Malformed bounds are
// repaired first. A size outside bounds is clamped and reported as a
// constraint violation.
func LayoutChild[M any](c Component[M], bounds layout.Bounds, node *layout.Node) layout.Size {
	if node.ExceedsDepth() {
		panic(&errors.Error{
			Op:   "core.LayoutChild",
			Kind: errors.KindDepth,
			Err:  fmt.Errorf("layout depth %d exceeds limit", node.Depth()),
		})
	}
	bounds = bounds.Normalize()
	node.Reset()
	if c == nil {
		size := bounds.Smallest()
		node.SetSize(size)
		return size
	}
	node.SetLabel(fmt.Sprintf("%T", c))

	got := c.Layout(bounds, node)
	size := bounds.Constrain(got)
	if size != got {
		errors.ReportViolation(&errors.ConstraintViolation{
			Component: node.Label(),
			Bounds:    bounds,
			Got:       got,
			Clamped:   size,
		})
	}
	node.SetSize(size)
	return size
}

// DrawChild draws c into dc. Nothing happens when the region has no area.
func DrawChild[M any](c Component[M], sc *StateContext[M], dc *DrawContext, frame rendering.Frame) {
	if c == nil || dc.Empty() {
		return
	}
	c.Draw(sc, dc, frame)
}
