package imageio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := surface.NewPixmap(3, 2)
	p.Set(0, 0, surface.Premultiply(easel.Opaque(255, 0, 0)))
	p.Set(1, 0, surface.Premultiply(easel.Opaque(0, 255, 0)))
	p.Set(2, 1, surface.Premultiply(easel.NewColor(128, 0, 0, 255)))

	data, err := EncodePNG(p)
	if err != nil {
		t.Fatalf("EncodePNG = %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode = %v", err)
	}
	if back.Width() != 3 || back.Height() != 2 {
		t.Fatalf("decoded size = %dx%d, want 3x2", back.Width(), back.Height())
	}

	if got := back.ColorAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("ColorAt(0,0) = %+v, want opaque red", got)
	}
	if got := back.ColorAt(1, 0); got.G != 255 {
		t.Errorf("ColorAt(1,0) = %+v, want opaque green", got)
	}
	got := back.ColorAt(2, 1)
	if got.A < 127 || got.A > 129 {
		t.Errorf("ColorAt(2,1) alpha = %d, want ~128", got.A)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode(garbage) = nil error, want failure")
	}
}

func TestWritePNG(t *testing.T) {
	p := surface.NewPixmap(2, 2)
	p.Clear(easel.Opaque(10, 20, 30))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(p, path); err != nil {
		t.Fatalf("WritePNG = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile = %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(written file) = %v", err)
	}
	if got := back.ColorAt(1, 1); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("ColorAt(1,1) = %+v, want (10,20,30)", got)
	}
}
