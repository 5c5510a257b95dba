package rendering

import "github.com/gdamore/tcell/v2"

// Style is the visual attribute set applied to a cell. Styles nest: a
// child's style is merged over the style accumulated from its ancestors.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Italic     bool
	Underline  bool
	Reverse    bool
}

// DefaultStyle is the empty style, rendering with terminal defaults.
var DefaultStyle = Style{}

// Merge returns s layered over parent: inherited colors come from parent,
// attributes are additive.
func (s Style) Merge(parent Style) Style {
	out := s
	if out.Foreground.IsInherit() {
		out.Foreground = parent.Foreground
	}
	if out.Background.IsInherit() {
		out.Background = parent.Background
	}
	out.Bold = out.Bold || parent.Bold
	out.Italic = out.Italic || parent.Italic
	out.Underline = out.Underline || parent.Underline
	out.Reverse = out.Reverse || parent.Reverse
	return out
}

// WithForeground returns a copy with the foreground set.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background set.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithBold returns a copy with bold toggled.
func (s Style) WithBold(on bool) Style {
	s.Bold = on
	return s
}

// TCell converts the style for a tcell screen.
func (s Style) TCell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.Foreground.TCell()).
		Background(s.Background.TCell()).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Reverse(s.Reverse)
}
