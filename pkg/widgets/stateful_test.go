package widgets_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
	"github.com/go-drift/cellkit/pkg/widgets"
)

func buildCounter(ctx *core.BuildContext, props widgets.CounterProps[msg]) widgets.Counter[msg] {
	return core.Build[msg, widgets.CounterProps[msg], widgets.Counter[msg]](ctx, props)
}

func TestCounterPersistsAcrossFrames(t *testing.T) {
	r := core.NewRenderer[msg]()
	var values []int
	root := func(ctx *core.BuildContext) core.Component[msg] {
		c := buildCounter(ctx.Child("hits"), widgets.CounterProps[msg]{
			Label:    "hits",
			Step:     2,
			OnChange: func(v int) msg { return fmt.Sprint(v) },
		})
		values = append(values, c.Value(ctx))
		return c
	}

	if got := render(t, r, 10, 1, root)[0]; got != "hits: 0" {
		t.Errorf("frame 1 = %q", got)
	}
	if got := render(t, r, 10, 1, root)[0]; got != "hits: 2" {
		t.Errorf("frame 2 = %q", got)
	}
	if diff := cmp.Diff([]int{0, 2}, values); diff != "" {
		t.Errorf("values seen in build (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]msg{"2", "4"}, r.Messages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestCounterStateReclaimed(t *testing.T) {
	r := core.NewRenderer[msg]()
	show := true
	root := func(ctx *core.BuildContext) core.Component[msg] {
		if !show {
			return widgets.Text[msg]{Content: "-"}
		}
		return buildCounter(ctx.Child("hits"), widgets.CounterProps[msg]{Label: "n"})
	}

	render(t, r, 10, 1, root)
	render(t, r, 10, 1, root)
	show = false
	render(t, r, 10, 1, root)
	if n := r.Store().Len(); n != 0 {
		t.Errorf("live states = %d, want 0", n)
	}
	show = true
	if got := render(t, r, 10, 1, root)[0]; got != "n: 0" {
		t.Errorf("reinserted counter = %q, want a fresh count", got)
	}
}

func TestCountersAtDistinctKeys(t *testing.T) {
	r := core.NewRenderer[msg]()
	root := func(ctx *core.BuildContext) core.Component[msg] {
		panels := ctx.Child("panels")
		return widgets.Column[msg]{Children: []core.Component[msg]{
			buildCounter(panels.Child("0"), widgets.CounterProps[msg]{Label: "a"}),
			buildCounter(panels.Child("1"), widgets.CounterProps[msg]{Label: "b", Step: 10}),
		}}
	}
	render(t, r, 8, 2, root)
	lines := render(t, r, 8, 2, root)
	if diff := cmp.Diff([]string{"a: 1", "b: 10"}, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	want := []core.Identity{"panels/0#counter", "panels/1#counter"}
	if diff := cmp.Diff(want, r.Store().Identities()); diff != "" {
		t.Errorf("identities (-want +got):\n%s", diff)
	}
}

func TestSparklineHistory(t *testing.T) {
	r := core.NewRenderer[msg]()
	var sample float64
	var history [][]float64
	root := func(ctx *core.BuildContext) core.Component[msg] {
		s := core.Build[msg, widgets.SparklineProps, widgets.Sparkline[msg]](ctx.Child("cpu"), widgets.SparklineProps{
			Title:  "cpu",
			Sample: sample,
		})
		history = append(history, s.Samples(ctx))
		return s
	}

	var lines []string
	for sample = 1; sample <= 5; sample++ {
		lines = render(t, r, 4, 2, root)
	}
	if diff := cmp.Diff([]string{"cpu", "▃▅▆█"}, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, history[4]); diff != "" {
		t.Errorf("history before frame 5 (-want +got):\n%s", diff)
	}
}

func TestSparklineFixedMax(t *testing.T) {
	r := core.NewRenderer[msg]()
	root := func(ctx *core.BuildContext) core.Component[msg] {
		return core.Build[msg, widgets.SparklineProps, widgets.Sparkline[msg]](ctx, widgets.SparklineProps{Sample: 50, Max: 100})
	}
	lines := render(t, r, 3, 1, root)
	if lines[0] != "  ▄" {
		t.Errorf("line = %q, want a single half-height bar right-aligned", lines[0])
	}
}

func TestMeter(t *testing.T) {
	m := widgets.Meter[msg]{Label: "mem", Used: 1, Total: 4, Unit: "G", Low: rendering.ColorGreen, High: rendering.ColorRed}
	buf := rendering.NewBuffer(12, 2)
	if _, err := core.NewRenderer[msg]().Frame(buf, static(m)); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	want := []string{"mem  25% 1/4", "███░░░░░░░░░"}
	if diff := cmp.Diff(want, buf.Lines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if c := buf.Cell(0, 1); c.Style.Foreground.IsInherit() {
		t.Error("bar should be colored")
	}

	node := layoutOf(t, m, layout.Bounds{MinHeight: 0, MaxWidth: 30, MaxHeight: 1})
	if got := node.Size(); got != (layout.Size{Width: 30, Height: 1}) {
		t.Errorf("one-row size = %v", got)
	}
	if got := m.Ratio(); got != 0.25 {
		t.Errorf("Ratio = %v", got)
	}
	if got := (widgets.Meter[msg]{Used: 3}).Ratio(); got != 0 {
		t.Errorf("Ratio with zero total = %v", got)
	}
}
