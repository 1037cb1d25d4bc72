package raster

import (
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

func TestPorterDuffOperators(t *testing.T) {
	// Premultiplied: half-transparent red source, opaque blue destination.
	const sr, sg, sb, sa = 128, 0, 0, 128
	const dr, dg, db, da = 0, 0, 255, 255

	tests := []struct {
		name           string
		mode           easel.BlendMode
		r, g, b, a     uint8
		tol            int
	}{
		{"Clear", easel.BlendClear, 0, 0, 0, 0, 0},
		{"Src", easel.BlendSrc, 128, 0, 0, 128, 0},
		{"Dst", easel.BlendDst, 0, 0, 255, 255, 0},
		{"SrcOver", easel.BlendSrcOver, 128, 0, 127, 255, 1},
		{"DstOver", easel.BlendDstOver, 0, 0, 255, 255, 1},
		{"SrcIn", easel.BlendSrcIn, 128, 0, 0, 128, 1},
		{"DstIn", easel.BlendDstIn, 0, 0, 128, 128, 1},
		{"SrcOut", easel.BlendSrcOut, 0, 0, 0, 0, 1},
		{"DstOut", easel.BlendDstOut, 0, 0, 127, 127, 1},
		{"Xor", easel.BlendXor, 0, 0, 127, 127, 1},
		{"Add", easel.BlendAdd, 128, 0, 255, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t2 *testing.T) {
			fn := blendFunc(tt.mode)
			r, g, b, a := fn(sr, sg, sb, sa, dr, dg, db, da)
			near := func(got, want uint8) bool {
				d := int(got) - int(want)
				return d >= -tt.tol && d <= tt.tol
			}
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) || !near(a, tt.a) {
				t2.Errorf("%s = (%d %d %d %d), want (%d %d %d %d)",
					tt.name, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestMultiplyOpaque(t *testing.T) {
	fn := blendFunc(easel.BlendMultiply)
	// Opaque half-gray over opaque half-gray: 0.5 * 0.5 = 0.25.
	r, _, _, a := fn(128, 128, 128, 255, 128, 128, 128, 255)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255", a)
	}
	if r < 60 || r > 68 {
		t.Errorf("multiply r = %d, want ~64", r)
	}
}

func TestScreenOpaque(t *testing.T) {
	fn := blendFunc(easel.BlendScreen)
	// 0.5 screen 0.5 = 0.75.
	r, _, _, _ := fn(128, 128, 128, 255, 128, 128, 128, 255)
	if r < 187 || r > 195 {
		t.Errorf("screen r = %d, want ~191", r)
	}
}

func TestDarkenLighten(t *testing.T) {
	dark := blendFunc(easel.BlendDarken)
	light := blendFunc(easel.BlendLighten)

	r, _, _, _ := dark(64, 64, 64, 255, 192, 192, 192, 255)
	if r < 62 || r > 66 {
		t.Errorf("darken r = %d, want ~64", r)
	}
	r, _, _, _ = light(64, 64, 64, 255, 192, 192, 192, 255)
	if r < 190 || r > 194 {
		t.Errorf("lighten r = %d, want ~192", r)
	}
}

func TestLuminosityPreservesSourceLum(t *testing.T) {
	fn := blendFunc(easel.BlendLuminosity)
	// White source over a saturated red destination keeps red's hue but
	// takes white's luminosity, producing something much brighter.
	r, g, b, a := fn(255, 255, 255, 255, 255, 0, 0, 255)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255", a)
	}
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("luminosity = (%d %d %d), want white (lum 1 clips to white)", r, g, b)
	}
}

func TestBlendModesStayInRange(t *testing.T) {
	samples := []struct{ r, g, b, a uint8 }{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 0, 0, 128},
		{10, 200, 30, 210},
	}
	for mode := easel.BlendClear; mode <= easel.BlendLuminosity; mode++ {
		fn := blendFunc(mode)
		for _, s := range samples {
			for _, d := range samples {
				r, g, b, a := fn(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
				// Premultiplied invariant: channels never exceed alpha by
				// more than rounding error.
				for i, c := range []uint8{r, g, b} {
					if int(c) > int(a)+2 {
						t.Fatalf("%v: channel %d = %d exceeds alpha %d (src %+v dst %+v)",
							mode, i, c, a, s, d)
					}
				}
			}
		}
	}
}

func TestCompositeOpacity(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(2, 2)
	src := surface.NewPixmap(2, 2)
	src.Clear(easel.Opaque(255, 0, 0))

	r.Composite(dst, src, 0.5, easel.BlendSrcOver)
	got := dst.ColorAt(0, 0)
	if got.A < 126 || got.A > 130 {
		t.Errorf("composited alpha = %d, want ~128", got.A)
	}

	// Opacity clamps: values above 1 behave as 1.
	dst2 := surface.NewPixmap(2, 2)
	r.Composite(dst2, src, 5, easel.BlendSrcOver)
	if got := dst2.At(0, 0); got != src.At(0, 0) {
		t.Errorf("opacity>1 composite = %#x, want %#x", got, src.At(0, 0))
	}
}
