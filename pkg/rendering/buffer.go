package rendering

import (
	"strings"

	"github.com/go-drift/cellkit/pkg/layout"
)

// Cell is one character position in a Buffer. A zero Rune marks the
// trailing half of a wide character.
type Cell struct {
	Rune  rune
	Style Style
}

// Buffer is an in-memory Backend. Tests and non-interactive commands draw
// into it and inspect the result.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	shows  int
}

// NewBuffer allocates a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

func (b *Buffer) Size() layout.Size {
	return layout.Size{Width: b.width, Height: b.height}
}

// Resize reallocates the buffer, discarding its content.
func (b *Buffer) Resize(width, height int) {
	*b = *NewBuffer(width, height)
}

func (b *Buffer) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Cell returns the cell at (x, y), or a zero cell when out of range.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// Show records a presentation; the buffer has nothing to flush.
func (b *Buffer) Show() error {
	b.shows++
	return nil
}

// Shows returns how many times Show was called.
func (b *Buffer) Shows() int {
	return b.shows
}

// Line returns row y as a string with trailing blanks kept.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.cells[y*b.width+x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Lines returns every row with trailing blanks trimmed.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = strings.TrimRight(b.Line(y), " ")
	}
	return lines
}

// String returns the buffer content, one trimmed row per line.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
