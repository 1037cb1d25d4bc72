package surface

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/gogpu/easel"
)

// Pixmap is a rectangular pixel buffer of packed premultiplied ARGB values:
// (A << 24) | (R << 16) | (G << 8) | B.
type Pixmap struct {
	width  int
	height int
	data   []uint32
}

// NewPixmap creates a zeroed (transparent) pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// NewPixmapFromData wraps an existing packed premultiplied ARGB buffer.
// The buffer length must be width*height.
func NewPixmapFromData(width, height int, data []uint32) *Pixmap {
	return &Pixmap{width: width, height: height, data: data}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw packed pixel data.
// The returned slice aliases the pixmap; callers serialize access through
// the Registry.
func (p *Pixmap) Data() []uint32 { return p.data }

// Bytes returns a little-endian byte serialization of the pixel data.
// This is the boundary representation used by get_pixels.
func (p *Pixmap) Bytes() []byte {
	out := make([]byte, len(p.data)*4)
	for i, v := range p.data {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// PackARGB packs premultiplied channels into a pixel value.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a pixel value into premultiplied channels.
func UnpackARGB(v uint32) (a, r, g, b uint8) {
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Premultiply converts a straight-alpha color to a packed premultiplied
// pixel value.
func Premultiply(c easel.Color) uint32 {
	mul := func(v, a uint8) uint8 {
		return uint8((uint16(v)*uint16(a) + 127) / 255)
	}
	return PackARGB(c.A, mul(c.R, c.A), mul(c.G, c.A), mul(c.B, c.A))
}

// Unpremultiply converts a packed premultiplied pixel value back to a
// straight-alpha color.
func Unpremultiply(v uint32) easel.Color {
	a, r, g, b := UnpackARGB(v)
	if a == 0 {
		return easel.Color{}
	}
	div := func(c, a uint8) uint8 {
		x := (uint16(c)*255 + uint16(a)/2) / uint16(a)
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return easel.Color{A: a, R: div(r, a), G: div(g, a), B: div(b, a)}
}

// At returns the packed pixel at (x, y), or 0 outside the buffer.
func (p *Pixmap) At(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Set stores a packed pixel at (x, y). Out-of-bounds writes are ignored.
func (p *Pixmap) Set(x, y int, v uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = v
}

// ColorAt returns the straight-alpha color at (x, y).
func (p *Pixmap) ColorAt(x, y int) easel.Color {
	return Unpremultiply(p.At(x, y))
}

// Clear overwrites every pixel with the given color, bypassing clip state.
func (p *Pixmap) Clear(c easel.Color) {
	v := Premultiply(c)
	for i := range p.data {
		p.data[i] = v
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// ToImage converts the pixmap to a straight-alpha image.NRGBA copy.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.ColorAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}
