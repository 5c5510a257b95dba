package widgets

import (
	"fmt"
	"strings"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Meter shows a used/total pair as a label line and a bar below it.
// It takes the full width it is offered and at most two rows.
type Meter[M any] struct {
	Label string
	Used  uint64
	Total uint64
	// Unit is appended to both numbers, e.g. "MiB".
	Unit  string
	Style rendering.Style
	// Low and High color the bar by fill ratio; both inherit by default.
	Low  rendering.Color
	High rendering.Color
}

// Ratio returns Used/Total in [0, 1].
func (m Meter[M]) Ratio() float64 {
	if m.Total == 0 {
		return 0
	}
	return min(float64(m.Used)/float64(m.Total), 1)
}

func (m Meter[M]) caption() string {
	return fmt.Sprintf("%s %3.0f%% %d/%d%s", m.Label, m.Ratio()*100, m.Used, m.Total, m.Unit)
}

func (m Meter[M]) Layout(bounds layout.Bounds, _ *layout.Node) layout.Size {
	width := bounds.MaxWidth
	if !bounds.HasBoundedWidth() {
		width = rendering.StringWidth(m.caption())
	}
	height := max(bounds.MinHeight, min(2, bounds.MaxHeight))
	return bounds.Constrain(layout.Size{Width: width, Height: height})
}

func (m Meter[M]) Draw(_ *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	dc = dc.WithStyle(m.Style)
	bar := dc.Region()
	if bar.Height >= 2 {
		dc.Text(frame, m.caption())
		bar.Y++
	}
	bar.Height = 1

	filled := int(m.Ratio()*float64(bar.Width) + 0.5)
	rendering.Paint(frame, bar, rendering.Text{
		Content: strings.Repeat("█", filled) + strings.Repeat("░", bar.Width-filled),
		Style:   rendering.Style{Foreground: m.Low.Blend(m.High, m.Ratio())}.Merge(dc.Style()),
	})
}
