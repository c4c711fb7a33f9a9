package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default" so cleared cells inherit the theme.
type Color uint32

const colorSet = 1 << 24

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex parses a "#RRGGBB" string. Malformed input yields ColorDefault.
func Hex(s string) Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorDefault
	}
	return RGB(r, g, b)
}

// IsDefault reports whether the color defers to the terminal.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the "#rrggbb" form, or "" for ColorDefault.
func (c Color) String() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lerp interpolates linearly between two colors. t is clamped to [0, 1].
func Lerp(from, to Color, t float64) Color {
	t = ClampF(t, 0, 1)
	r1, g1, b1 := from.Components()
	r2, g2, b2 := to.Components()
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// Blend composites src over c with the given opacity.
// Blending over ColorDefault treats the backdrop as black.
func (c Color) Blend(src Color, alpha float64) Color {
	base := c
	if base.IsDefault() {
		base = RGB(0, 0, 0)
	}
	return Lerp(base, src, alpha)
}
