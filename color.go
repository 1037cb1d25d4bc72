package easel

import "image/color"

// Color is an ARGB color with 8-bit channels and straight (non-premultiplied)
// alpha. Premultiplication policy is owned by the rasterizer; the data model
// always carries straight alpha.
type Color struct {
	A, R, G, B uint8
}

// NewColor creates a color from alpha, red, green, and blue components.
func NewColor(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// Opaque creates a fully opaque color from RGB components.
func Opaque(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// Transparent is fully transparent black.
var Transparent = Color{}

// NColor converts to the standard library color.Color interface.
func (c Color) NColor() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard library color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Lerp performs linear interpolation between two colors.
// t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + t*(float32(b)-float32(a)) + 0.5)
	}
	return Color{
		A: lerp(c.A, other.A),
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
	}
}
