package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
)

// Text displays a string in a single style.
//
// Lines are split on '\n'. With Wrap set, lines longer than the available
// width are broken at that width and the text takes the full width;
// otherwise they are cut at the region edge. MaxLines limits the number of
// visible lines (0 = unlimited).
// Widths are measured in terminal cells, so wide runes count double.
type Text[M any] struct {
	Content  string
	Style    rendering.Style
	Align    rendering.TextAlign
	MaxLines int
	Wrap     bool
}

func (t Text[M]) lines(width int) []string {
	content := t.Content
	if t.Wrap && width > 0 && width < layout.Unbounded {
		content = runewidth.Wrap(content, width)
	}
	lines := strings.Split(content, "\n")
	if t.MaxLines > 0 && len(lines) > t.MaxLines {
		lines = lines[:t.MaxLines]
	}
	return lines
}

func (t Text[M]) Layout(bounds layout.Bounds, _ *layout.Node) layout.Size {
	if t.Content == "" {
		return bounds.Smallest()
	}
	lines := t.lines(bounds.MaxWidth)
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	if t.Wrap && bounds.HasBoundedWidth() && rendering.MeasureText(t.Content).Width > bounds.MaxWidth {
		width = bounds.MaxWidth
	}
	return bounds.Constrain(layout.Size{Width: width, Height: len(lines)})
}

func (t Text[M]) Draw(_ *core.StateContext[M], dc *core.DrawContext, frame rendering.Frame) {
	dc = dc.WithStyle(t.Style)
	dc.Paint(frame, rendering.Text{
		Content: strings.Join(t.lines(dc.Size().Width), "\n"),
		Style:   dc.Style(),
		Align:   t.Align,
	})
}
