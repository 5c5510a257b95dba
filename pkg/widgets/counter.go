package widgets

import (
	"fmt"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// CounterProps configures a [Counter].
type CounterProps[M any] struct {
	Label string
	// Step is added after every draw; zero means 1.
	Step  int
	Style rendering.Style
	// OnChange, when set, turns each new value into a message.
	OnChange func(value int) M
}

type counterState struct {
	core.StateBase
	value int
}

// Counter is a stateful leaf showing "Label: n", where n grows by Step each
// time the counter is drawn. Its count lives in the state store under the
// identity of the build context it was built with.
//
//	c := core.Build[Msg, widgets.CounterProps[Msg], widgets.Counter[Msg]](ctx.Child("frames"), props)
type Counter[M any] struct {
	props CounterProps[M]
	state core.State[counterState]
}

func (Counter[M]) Build(ctx *core.BuildContext, props CounterProps[M]) Counter[M] {
	return Counter[M]{
		props: props,
		state: core.UseState(ctx, "counter", func() counterState { return counterState{} }),
	}
}

// Value returns the current count, or 0 when the state is gone.
func (c Counter[M]) Value(scope core.Scope) int {
	if s := c.state.Get(scope); s != nil {
		return s.value
	}
	return 0
}

func (c Counter[M]) Layout(bounds layout.Bounds, _ *layout.Node) layout.Size {
	width := bounds.MaxWidth
	if !bounds.HasBoundedWidth() {
		width = rendering.StringWidth(c.props.Label) + 8
	}
	return bounds.Constrain(layout.Size{Width: width, Height: 1})
}

func (c Counter[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	s := c.state.Get(sc)
	if s == nil {
		return
	}
	dc.WithStyle(c.props.Style).Text(frame, fmt.Sprintf("%s: %d", c.props.Label, s.value))

	step := c.props.Step
	if step == 0 {
		step = 1
	}
	s.value += step
	if c.props.OnChange != nil {
		sc.Send(c.props.OnChange(s.value))
	}
}
