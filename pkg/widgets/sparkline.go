package widgets

import (
	"fmt"
	"strings"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// SparklineProps carries one frame's input to a [Sparkline]: its
// configuration and the newest sample.
type SparklineProps struct {
	Title  string
	Sample float64
	// Max is the value drawn as a full cell; zero scales to the largest
	// sample kept.
	Max   float64
	Style rendering.Style
	Low   rendering.Color
	High  rendering.Color
}

type sparklineState struct {
	core.StateBase
	samples []float64
}

func (s *sparklineState) push(v float64, capacity int) {
	s.samples = append(s.samples, v)
	if over := len(s.samples) - capacity; over > 0 {
		s.samples = append(s.samples[:0], s.samples[over:]...)
	}
}

// Sparkline is a stateful leaf plotting the history of a value. Each draw
// appends the current sample to a history kept in the state store, holding
// as many samples as the region is wide, so the plot scrolls left.
type Sparkline[M any] struct {
	props SparklineProps
	state core.State[sparklineState]
}

func (Sparkline[M]) Build(ctx *core.BuildContext, props SparklineProps) Sparkline[M] {
	return Sparkline[M]{
		props: props,
		state: core.UseState(ctx, "sparkline", func() sparklineState { return sparklineState{} }),
	}
}

// Samples returns a copy of the kept history.
func (s Sparkline[M]) Samples(scope core.Scope) []float64 {
	st := s.state.Get(scope)
	if st == nil {
		return nil
	}
	return append([]float64(nil), st.samples...)
}

func (s Sparkline[M]) Layout(bounds layout.Bounds, _ *layout.Node) layout.Size {
	width := bounds.MaxWidth
	if !bounds.HasBoundedWidth() {
		width = max(rendering.StringWidth(s.props.Title)+8, 16)
	}
	height := max(bounds.MinHeight, min(2, bounds.MaxHeight))
	return bounds.Constrain(layout.Size{Width: width, Height: height})
}

func (s Sparkline[M]) Draw(sc *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	st := s.state.Get(sc)
	if st == nil {
		return
	}
	dc = dc.WithStyle(s.props.Style)
	plot := dc.Region()
	st.push(s.props.Sample, plot.Width)

	if plot.Height >= 2 {
		dc.Text(frame, fmt.Sprintf("%s %.1f", s.props.Title, s.props.Sample))
		plot.Y++
	}
	plot.Height = 1

	peak := s.props.Max
	if peak <= 0 {
		for _, v := range st.samples {
			peak = max(peak, v)
		}
	}

	var sb strings.Builder
	for i := 0; i < plot.Width-len(st.samples); i++ {
		sb.WriteRune(' ')
	}
	for _, v := range st.samples {
		sb.WriteRune(sparkRune(v, peak))
	}
	level := 0.0
	if peak > 0 {
		level = s.props.Sample / peak
	}
	rendering.Paint(frame, plot, rendering.Text{
		Content: sb.String(),
		Style:   rendering.Style{Foreground: s.props.Low.Blend(s.props.High, level)}.Merge(dc.Style()),
	})
}

func sparkRune(v, peak float64) rune {
	if peak <= 0 || v <= 0 {
		return sparkRunes[0]
	}
	i := int(v / peak * float64(len(sparkRunes)-1))
	return sparkRunes[min(max(i, 0), len(sparkRunes)-1)]
}
