package cmd

import (
	"fmt"
	"runtime"

	"github.com/go-drift/cellkit/cmd/cellkit/internal/config"
	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
	"github.com/go-drift/cellkit/pkg/widgets"
)

// Msg is the message type of the dashboard tree.
type Msg struct {
	Panel  string
	Frames int
}

// Sources supplies the live values shown by panels.
type Sources struct {
	// Heap returns bytes in use and bytes reserved.
	Heap func() (used, total uint64)
	// FrameTime returns the duration of the last frame in milliseconds.
	FrameTime func() float64
}

var (
	okColor   = rendering.RGB(0x4c, 0xaf, 0x50)
	warnColor = rendering.RGB(0xe5, 0x39, 0x35)
)

// Dashboard turns a resolved config into a component tree. Its fields are
// only touched from the render loop goroutine.
type Dashboard struct {
	cfg    *config.Resolved
	src    Sources
	frames map[string]int
}

// NewDashboard returns a dashboard for cfg. Nil sources read as zero.
func NewDashboard(cfg *config.Resolved, src Sources) *Dashboard {
	if src.Heap == nil {
		src.Heap = func() (uint64, uint64) { return 0, 0 }
	}
	if src.FrameTime == nil {
		src.FrameTime = func() float64 { return 0 }
	}
	return &Dashboard{cfg: cfg, src: src, frames: make(map[string]int)}
}

// Update applies a message sent while drawing. Each counter panel reports
// its own count.
func (d *Dashboard) Update(m Msg) {
	d.frames[m.Panel] = m.Frames
}

// Root builds the tree: a status line above one bordered panel per
// configured panel.
func (d *Dashboard) Root(ctx *core.BuildContext) core.Component[Msg] {
	accent := rendering.DefaultStyle.WithForeground(d.cfg.Accent).WithBold(true)
	children := []core.Component[Msg]{
		widgets.Text[Msg]{Content: d.status(), Style: accent},
	}
	for i, p := range d.cfg.Panels {
		key := core.Key(fmt.Sprintf("%d-%s", i, p.Kind))
		var panel core.Component[Msg] = widgets.Border[Msg]{
			Title:      p.Title,
			Runes:      rendering.BoxRounded,
			TitleStyle: accent,
			Child:      d.panel(ctx.Child(key), p),
		}
		if p.Height > 0 {
			panel = widgets.SizedBox[Msg]{Height: p.Height, Child: panel}
		} else {
			panel = widgets.Flexible[Msg]{Flex: p.Weight, Child: panel}
		}
		children = append(children, panel)
	}
	return widgets.Column[Msg]{
		Children:           children,
		CrossAxisAlignment: layout.CrossAxisAlignmentStretch,
	}
}

// status shows the counts of all counter panels summed.
func (d *Dashboard) status() string {
	total := 0
	for _, n := range d.frames {
		total += n
	}
	return fmt.Sprintf("%s  frames %d", d.cfg.Title, total)
}

func (d *Dashboard) panel(ctx *core.BuildContext, p config.Panel) core.Component[Msg] {
	switch p.Kind {
	case config.PanelCounter:
		title := p.Title
		return core.Build[Msg, widgets.CounterProps[Msg], widgets.Counter[Msg]](ctx, widgets.CounterProps[Msg]{
			Label:    "drawn",
			OnChange: func(v int) Msg { return Msg{Panel: title, Frames: v} },
		})
	case config.PanelHeap:
		used, total := d.src.Heap()
		return widgets.Meter[Msg]{
			Label: "in use",
			Used:  used >> 20,
			Total: total >> 20,
			Unit:  "MiB",
			Low:   okColor,
			High:  warnColor,
		}
	case config.PanelFrameTime:
		return core.Build[Msg, widgets.SparklineProps, widgets.Sparkline[Msg]](ctx, widgets.SparklineProps{
			Title:  "ms",
			Sample: d.src.FrameTime(),
			Low:    okColor,
			High:   warnColor,
		})
	default:
		return widgets.Text[Msg]{Content: p.Text, Wrap: true}
	}
}

func heapStats() (used, total uint64) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapInuse, ms.HeapSys
}
