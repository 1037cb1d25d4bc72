package surface

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/easel"
)

func TestPackUnpackARGB(t *testing.T) {
	v := PackARGB(0x80, 0x40, 0x20, 0x10)
	if v != 0x80402010 {
		t.Fatalf("PackARGB = %#x, want 0x80402010", v)
	}
	a, r, g, b := UnpackARGB(v)
	if a != 0x80 || r != 0x40 || g != 0x20 || b != 0x10 {
		t.Errorf("UnpackARGB = %#x %#x %#x %#x", a, r, g, b)
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    easel.Color
	}{
		{"opaque", easel.Opaque(200, 100, 50)},
		{"transparent", easel.Transparent},
		{"half alpha", easel.NewColor(128, 255, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unpremultiply(Premultiply(tt.c))
			if got.A != tt.c.A {
				t.Fatalf("alpha changed: %d -> %d", tt.c.A, got.A)
			}
			// Rounding through premultiplication may move channels by one.
			near := func(a, b uint8) bool {
				d := int(a) - int(b)
				return d >= -1 && d <= 1
			}
			if tt.c.A != 0 && (!near(got.R, tt.c.R) || !near(got.G, tt.c.G) || !near(got.B, tt.c.B)) {
				t.Errorf("round trip %+v -> %+v", tt.c, got)
			}
		})
	}
}

func TestPixmapClearAndBytes(t *testing.T) {
	p := NewPixmap(2, 1)
	p.Clear(easel.Opaque(255, 0, 0))

	want := PackARGB(255, 255, 0, 0)
	if p.At(0, 0) != want || p.At(1, 0) != want {
		t.Fatalf("Clear left %#x %#x, want %#x", p.At(0, 0), p.At(1, 0), want)
	}

	raw := p.Bytes()
	if len(raw) != 8 {
		t.Fatalf("len(Bytes()) = %d, want 8", len(raw))
	}
	if got := binary.LittleEndian.Uint32(raw); got != want {
		t.Errorf("Bytes()[0:4] = %#x, want %#x", got, want)
	}
}

func TestPixmapBoundsSafety(t *testing.T) {
	p := NewPixmap(2, 2)
	if got := p.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0) = %#x, want 0", got)
	}
	if got := p.At(2, 2); got != 0 {
		t.Errorf("At(2,2) = %#x, want 0", got)
	}
	p.Set(5, 5, 0xffffffff) // must not panic or corrupt
	for i, v := range p.Data() {
		if v != 0 {
			t.Errorf("Data()[%d] = %#x after out-of-bounds Set", i, v)
		}
	}
}

func TestPixmapClone(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(1, 1, 0x11223344)
	c := p.Clone()
	c.Set(0, 0, 0xffffffff)
	if p.At(0, 0) != 0 {
		t.Error("Clone aliases the source buffer")
	}
	if c.At(1, 1) != 0x11223344 {
		t.Error("Clone dropped pixel data")
	}
}
