package layout

import (
	"strings"
	"testing"
)

func TestNodeChildren(t *testing.T) {
	root := NewNode()
	a := root.NewChild()
	b := root.NewChild()
	a.SetSize(Size{Width: 3, Height: 1})
	b.SetOffset(Offset{Y: 1})

	if root.Len() != 2 || root.Child(0) != a || root.Child(1) != b {
		t.Fatalf("unexpected children: %v", root.Children())
	}
	if root.Child(2) != nil || root.Child(-1) != nil {
		t.Error("out of range Child should be nil")
	}
	if got := root.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := b.Rect(); got != (Rect{X: 0, Y: 1}) {
		t.Errorf("Rect() = %v", got)
	}
}

func TestNodeResetKeepsOffset(t *testing.T) {
	n := NewNode()
	n.SetOffset(Offset{X: 2, Y: 3})
	n.SetSize(Size{Width: 5, Height: 5})
	n.NewChild()
	n.Reset()
	if n.Len() != 0 || n.Size() != (Size{}) {
		t.Errorf("Reset left size %v and %d children", n.Size(), n.Len())
	}
	if n.Offset() != (Offset{X: 2, Y: 3}) {
		t.Errorf("Reset changed offset to %v", n.Offset())
	}
}

func TestNodeEqualAndString(t *testing.T) {
	build := func() *Node {
		root := NewNode()
		root.SetLabel("Column")
		root.SetSize(Size{Width: 10, Height: 2})
		c := root.NewChild()
		c.SetLabel("Text")
		c.SetSize(Size{Width: 4, Height: 1})
		c.SetOffset(Offset{Y: 1})
		return root
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identical trees should be equal")
	}
	b.Child(0).SetOffset(Offset{})
	if a.Equal(b) {
		t.Error("trees with different offsets should differ")
	}

	want := "Column (0,0 10x2)\n  Text (0,1 4x1)\n"
	if got := a.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(a.String(), "Text") {
		t.Error("dump should include child label")
	}
}

func TestRectIntersect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	got := r.Intersect(Rect{X: 8, Y: 3, Width: 10, Height: 10})
	if got != (Rect{X: 8, Y: 3, Width: 2, Height: 2}) {
		t.Errorf("Intersect() = %v", got)
	}
	if !r.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}).Empty() {
		t.Error("disjoint rects should intersect to empty")
	}
	if !r.Contains(9, 4) || r.Contains(10, 4) {
		t.Error("Contains edge handling is wrong")
	}
}

func TestNodeDepthLimit(t *testing.T) {
	root := NewNode()
	root.SetDepthLimit(2)
	n := root
	for i := 0; i < 3; i++ {
		n = n.NewChild()
	}
	if n.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", n.Depth())
	}
	if !n.ExceedsDepth() {
		t.Error("depth 3 should exceed limit 2")
	}
	if root.Child(0).ExceedsDepth() {
		t.Error("depth 1 should not exceed limit 2")
	}
}
