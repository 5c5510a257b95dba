package rendering

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is stored as ARGB (0xAARRGGBB). The zero value is ColorInherit:
// the cell keeps whatever color its ancestors chose, and the terminal
// default if none did.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorInherit defers to the enclosing style.
const ColorInherit Color = 0

// Common colors.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(0xFF, 0xFF, 0xFF)
	ColorRed    = RGB(0xFF, 0, 0)
	ColorGreen  = RGB(0, 0xFF, 0)
	ColorBlue   = RGB(0, 0, 0xFF)
	ColorYellow = RGB(0xFF, 0xFF, 0)
	ColorGray   = RGB(0x80, 0x80, 0x80)
)

// IsInherit reports whether the color defers to its parent.
func (c Color) IsInherit() bool {
	return c>>24 == 0
}

// RGB returns the color components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// TCell converts the color for a tcell screen.
func (c Color) TCell() tcell.Color {
	if c.IsInherit() {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c Color) String() string {
	if c.IsInherit() {
		return "inherit"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseColor accepts "#rrggbb", a W3C/X11 color name known to tcell, or
// "" / "inherit" for ColorInherit.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "inherit" {
		return ColorInherit, nil
	}
	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault {
		return ColorInherit, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return ColorInherit, fmt.Errorf("color %q has no RGB value", s)
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// Blend returns the color a fraction t of the way from c to other, mixed in
// HCL space so intermediate shades keep an even lightness. t is clamped to
// [0, 1]. If either end inherits, the nearer end is returned.
func (c Color) Blend(other Color, t float64) Color {
	t = min(max(t, 0), 1)
	if c.IsInherit() || other.IsInherit() {
		if t < 0.5 {
			return c
		}
		return other
	}
	r, g, b := c.colorful().BlendHcl(other.colorful(), t).Clamped().RGB255()
	return RGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
