package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/layout"
	"github.com/go-drift/cellkit/pkg/rendering"
	"github.com/go-drift/cellkit/pkg/widgets"
)

func TestTextLayout(t *testing.T) {
	loose := layout.Loose(layout.Size{Width: 3, Height: 10})
	tests := []struct {
		name   string
		text   widgets.Text[msg]
		bounds layout.Bounds
		want   layout.Size
	}{
		{"single", widgets.Text[msg]{Content: "hello"}, layout.Loose(layout.Size{Width: 80, Height: 24}), layout.Size{Width: 5, Height: 1}},
		{"empty", widgets.Text[msg]{}, loose, layout.Size{}},
		{"wide runes", widgets.Text[msg]{Content: "世界!"}, layout.Loose(layout.Size{Width: 80, Height: 1}), layout.Size{Width: 5, Height: 1}},
		{"cut", widgets.Text[msg]{Content: "abcdefgh"}, loose, layout.Size{Width: 3, Height: 1}},
		{"wrap", widgets.Text[msg]{Content: "abcdefgh", Wrap: true}, loose, layout.Size{Width: 3, Height: 3}},
		{"max lines", widgets.Text[msg]{Content: "abcdefgh", Wrap: true, MaxLines: 2}, loose, layout.Size{Width: 3, Height: 2}},
		{"multi-line", widgets.Text[msg]{Content: "a\nbb\n"}, loose, layout.Size{Width: 2, Height: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.LayoutChild[msg](tt.text, tt.bounds, layout.NewNode()); got != tt.want {
				t.Errorf("size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextWrapDraw(t *testing.T) {
	root := widgets.Text[msg]{Content: "abcdefgh", Wrap: true}
	lines := render(t, core.NewRenderer[msg](), 3, 4, static(root))
	if diff := cmp.Diff([]string{"abc", "def", "gh", ""}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestTextAlignRight(t *testing.T) {
	root := widgets.SizedBox[msg]{Width: 6, Child: widgets.Text[msg]{Content: "ok", Align: rendering.TextAlignRight}}
	lines := render(t, core.NewRenderer[msg](), 6, 1, static(root))
	if lines[0] != "    ok" {
		t.Errorf("line = %q", lines[0])
	}
}
