package layout

import "testing"

func TestBoundsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Bounds
		want Bounds
	}{
		{"valid", Bounds{1, 5, 2, 6}, Bounds{1, 5, 2, 6}},
		{"negative", Bounds{-3, -1, -2, 4}, Bounds{0, 0, 0, 4}},
		{"min above max", Bounds{9, 5, 7, 3}, Bounds{5, 5, 3, 3}},
		{"zero", Bounds{}, Bounds{}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("%s: Normalize() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBoundsConstrain(t *testing.T) {
	b := Bounds{MinWidth: 2, MaxWidth: 10, MinHeight: 0, MaxHeight: 1}
	tests := []struct {
		in   Size
		want Size
	}{
		{Size{5, 1}, Size{5, 1}},
		{Size{1, 2}, Size{2, 1}},
		{Size{40, -4}, Size{10, 0}},
	}
	for _, tt := range tests {
		got := b.Constrain(tt.in)
		if got != tt.want {
			t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !b.Satisfies(got) {
			t.Errorf("Constrain(%v) = %v does not satisfy %v", tt.in, got, b)
		}
	}
}

func TestBoundsConstrainMalformedNeverPanics(t *testing.T) {
	malformed := []Bounds{
		{MinWidth: 10, MaxWidth: 2, MinHeight: 5, MaxHeight: -1},
		{MinWidth: -1, MaxWidth: -1, MinHeight: -1, MaxHeight: -1},
		{MaxWidth: Unbounded, MinHeight: Unbounded, MaxHeight: 3},
	}
	for _, b := range malformed {
		got := b.Constrain(Size{Width: 4, Height: 4})
		if !b.Normalize().Satisfies(got) {
			t.Errorf("Constrain on %v = %v, outside normalized bounds", b, got)
		}
	}
}

func TestBoundsUnbounded(t *testing.T) {
	b := Expand()
	if b.HasBoundedWidth() || b.HasBoundedHeight() {
		t.Fatalf("Expand() should be unbounded, got %v", b)
	}
	d := b.Deflate(UniformInsets(2))
	if d.MaxWidth != Unbounded || d.MaxHeight != Unbounded {
		t.Errorf("Deflate lost the unbounded sentinel: %v", d)
	}
	if got := b.Biggest(); got != (Size{}) {
		t.Errorf("Biggest() of unbounded = %v, want zero size", got)
	}
	if got := b.String(); got != "Bounds(w 0..inf, h 0..inf)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBoundsDeflate(t *testing.T) {
	b := Bounds{MinWidth: 4, MaxWidth: 20, MinHeight: 1, MaxHeight: 3}
	got := b.Deflate(Insets{Top: 1, Right: 2, Bottom: 1, Left: 2})
	want := Bounds{MinWidth: 0, MaxWidth: 16, MinHeight: 0, MaxHeight: 1}
	if got != want {
		t.Errorf("Deflate() = %v, want %v", got, want)
	}
	tiny := TightFor(1, 1).Deflate(UniformInsets(3))
	if tiny != (Bounds{}) {
		t.Errorf("Deflate past zero = %v, want zero bounds", tiny)
	}
}

func TestBoundsEnforce(t *testing.T) {
	outer := Bounds{MaxWidth: 10, MaxHeight: 1}
	inner := Bounds{MinWidth: 0, MaxWidth: 80, MinHeight: 2, MaxHeight: 24}
	got := inner.Enforce(outer)
	want := Bounds{MaxWidth: 10, MinHeight: 1, MaxHeight: 1}
	if got != want {
		t.Errorf("Enforce() = %v, want %v", got, want)
	}
}

func TestBoundsTighten(t *testing.T) {
	b := Bounds{MaxWidth: 10, MaxHeight: 10}
	if got := b.TightenWidth(30); got.MinWidth != 10 || got.MaxWidth != 10 {
		t.Errorf("TightenWidth(30) = %v", got)
	}
	if got := b.TightenHeight(4); got.MinHeight != 4 || got.MaxHeight != 4 {
		t.Errorf("TightenHeight(4) = %v", got)
	}
	if !TightFor(3, 3).IsTight() {
		t.Error("TightFor should be tight")
	}
}
