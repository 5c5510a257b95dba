package rendering

import (
	"strings"

	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/mattn/go-runewidth"
)

// TextAlign positions a line of text inside its region.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// MeasureText returns the cell extent of a possibly multi-line string.
func MeasureText(s string) layout.Size {
	if s == "" {
		return layout.Size{}
	}
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return layout.Size{Width: width, Height: len(lines)}
}

// Truncate shortens s to at most width cells, ending with tail when it
// had to cut.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}

// DrawText writes s starting at (x, y), stopping after width cells.
// Wide runes that would straddle the limit are dropped. It returns the
// number of cells written.
func DrawText(frame Frame, x, y, width int, s string, style Style) int {
	offset := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if offset+w > width {
			break
		}
		frame.SetCell(x+offset, y, r, style)
		for i := 1; i < w; i++ {
			frame.SetCell(x+offset+i, y, 0, style)
		}
		offset += w
	}
	return offset
}

// Text paints one or more lines into a region, clipping on both axes.
type Text struct {
	Content string
	Style   Style
	Align   TextAlign
}

func (t Text) Paint(frame Frame, region layout.Rect) {
	for i, line := range strings.Split(t.Content, "\n") {
		if i >= region.Height {
			return
		}
		x := region.X
		if w := runewidth.StringWidth(line); w < region.Width {
			switch t.Align {
			case TextAlignCenter:
				x += (region.Width - w) / 2
			case TextAlignRight:
				x += region.Width - w
			}
		}
		DrawText(frame, x, region.Y+i, region.Right()-x, line, t.Style)
	}
}
