package rendering

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/cellkit/pkg/layout"
)

// Screen is a Backend on top of a tcell screen.
type Screen struct {
	screen tcell.Screen
	closed sync.Once
}

// NewScreen opens and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("rendering.NewScreen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("rendering.NewScreen: init: %w", err)
	}
	return &Screen{screen: s}, nil
}

// WrapScreen adapts an already initialized tcell screen, such as a
// simulation screen in tests.
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// TCell returns the underlying tcell screen for event polling.
func (s *Screen) TCell() tcell.Screen {
	return s.screen
}

func (s *Screen) Size() layout.Size {
	w, h := s.screen.Size()
	return layout.Size{Width: w, Height: h}
}

func (s *Screen) SetCell(x, y int, r rune, style Style) {
	if r == 0 {
		// Trailing half of a wide rune; tcell tracks it itself.
		return
	}
	s.screen.SetContent(x, y, r, nil, style.TCell())
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() error {
	s.screen.Show()
	return nil
}

// Sync forces a full redraw, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Close restores the terminal. Calls after the first do nothing.
func (s *Screen) Close() {
	s.closed.Do(s.screen.Fini)
}
