// Package core provides the component contracts and the render cycle.
//
// A frame runs three phases, synchronously and in order:
//
//   - Build: stateful components resolve their identity through a
//     [BuildContext] and fetch or initialize their state from the [Store].
//   - Layout: every component turns incoming [layout.Bounds] into a
//     [layout.Size], recursively sizing its children into a [layout.Node].
//   - Draw: every component paints into the region its node resolved to,
//     through a [DrawContext], on a [rendering.Frame].
//
// [Renderer.Frame] drives the three phases.
//
// # Stateless components
//
// Anything implementing [Component] is a stateless component:
//
//	type Label struct{ Text string }
//
//	func (l Label) Layout(b layout.Bounds, _ *layout.Node) layout.Size {
//	    return b.Constrain(rendering.MeasureText(l.Text))
//	}
//
//	func (l Label) Draw(_ *core.StateContext[Msg], dc *core.DrawContext, f rendering.Frame) {
//	    dc.Text(f, l.Text)
//	}
//
// # Stateful components
//
// A stateful component separates properties, passed in fresh every frame,
// from state, owned by the store and keyed by a programmer-supplied
// identity: the path of [Key]s leading to the component plus a tag.
//
//	type counterState struct {
//	    core.StateBase
//	    clicks int
//	}
//
//	type Counter struct {
//	    label string
//	    state core.State[counterState]
//	}
//
//	func (Counter) Build(ctx *core.BuildContext, label string) Counter {
//	    return Counter{label: label, state: core.UseState(ctx, "counter", func() counterState {
//	        return counterState{}
//	    })}
//	}
//
// Build runs on the zero value of the component type. Use [Build] to call
// it:
//
//	c := core.Build[Msg, string, Counter](ctx.Child("clicks"), "Clicks")
//
// State is looked up again every frame by identity. The same identity in
// consecutive frames yields the same state instance; an identity missing
// from a build pass has its state reclaimed right after that pass. Two
// components claiming one identity in the same frame abort the frame.
//
// # Contexts
//
// Contexts are scoped to the phase that received them. Using one after
// its phase ended panics with [errors.ErrContextClosed]. [State] handles are plain
// values with no pointer into the store; they resolve only through an open
// context, and a handle to reclaimed state resolves to nil.
package core
