package raster

import (
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

var solidRed = easel.SolidPaint{Color: easel.Opaque(255, 0, 0)}

func TestFillTriangle(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(20, 20)

	path := easel.BuildPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		LineTo(10, 10).
		Close().
		Build()
	r.Fill(dst, easel.Identity(), nil, path, solidRed)

	// (5, 5) sits on the hypotenuse; its center counts as inside.
	if got := dst.ColorAt(5, 5); got.R != 255 || got.A != 255 {
		t.Errorf("ColorAt(5,5) = %+v, want opaque red", got)
	}
	if got := dst.ColorAt(8, 4); got.R != 255 {
		t.Errorf("interior ColorAt(8,4) = %+v, want red", got)
	}
	if got := dst.At(15, 15); got != 0 {
		t.Errorf("At(15,15) = %#x, want untouched", got)
	}
	if got := dst.At(2, 8); got != 0 {
		t.Errorf("At(2,8) = %#x, want outside triangle", got)
	}
}

func TestFillRect(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(10, 10)
	r.FillRect(dst, easel.Identity(), nil, 2, 2, 4, 4, solidRed)

	want := surface.PackARGB(255, 255, 0, 0)
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if got := dst.At(x, y); got != want {
				t.Fatalf("At(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
	if got := dst.At(1, 1); got != 0 {
		t.Errorf("At(1,1) = %#x, want empty", got)
	}
	if got := dst.At(6, 6); got != 0 {
		t.Errorf("At(6,6) = %#x, want empty", got)
	}
}

func TestFillRectTransformed(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(20, 20)
	r.FillRect(dst, easel.TranslationMatrix(10, 10), nil, 0, 0, 4, 4, solidRed)

	if got := dst.ColorAt(11, 11); got.R != 255 {
		t.Errorf("ColorAt(11,11) = %+v, want red under translation", got)
	}
	if got := dst.At(1, 1); got != 0 {
		t.Errorf("At(1,1) = %#x, want empty under translation", got)
	}
}

func TestFillRespectsClip(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(10, 10)
	clip := surface.RectMask(10, 10, 0, 0, 5, 10)
	r.FillRect(dst, easel.Identity(), nil, 0, 0, 10, 10, solidRed)

	dst2 := surface.NewPixmap(10, 10)
	r.FillRect(dst2, easel.Identity(), clip, 0, 0, 10, 10, solidRed)

	if got := dst2.At(2, 2); got != dst.At(2, 2) {
		t.Errorf("inside clip differs: %#x vs %#x", dst2.At(2, 2), dst.At(2, 2))
	}
	if got := dst2.At(7, 2); got != 0 {
		t.Errorf("At(7,2) = %#x, want clipped out", got)
	}
}

func TestFillNonzeroWindingHole(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(20, 20)

	// Two same-direction rects: winding accumulates, no hole.
	path := easel.BuildPath().
		RectTo(2, 2, 16, 16).
		RectTo(6, 6, 8, 8).
		Build()
	r.Fill(dst, easel.Identity(), nil, path, solidRed)

	if got := dst.ColorAt(10, 10); got.R != 255 {
		t.Errorf("nonzero winding: ColorAt(10,10) = %+v, want filled center", got)
	}
	if got := dst.ColorAt(4, 4); got.R != 255 {
		t.Errorf("ring ColorAt(4,4) = %+v, want filled", got)
	}
}

func TestFillEmptyPath(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(4, 4)
	r.Fill(dst, easel.Identity(), nil, easel.BuildPath().Build(), solidRed)
	for i, v := range dst.Data() {
		if v != 0 {
			t.Fatalf("pixel %d = %#x, want empty surface", i, v)
		}
	}
}

func TestFillSemiTransparentBlends(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(4, 4)
	dst.Clear(easel.Opaque(0, 0, 255))

	half := easel.SolidPaint{Color: easel.NewColor(128, 255, 0, 0)}
	r.FillRect(dst, easel.Identity(), nil, 0, 0, 4, 4, half)

	got := dst.ColorAt(2, 2)
	if got.A != 255 {
		t.Fatalf("alpha = %d, want 255 over opaque background", got.A)
	}
	if got.R < 120 || got.R > 136 || got.B < 120 || got.B > 136 {
		t.Errorf("half red over blue = %+v, want roughly half red half blue", got)
	}
}

func TestPathMask(t *testing.T) {
	r := New()
	mask := r.PathMask(10, 10, easel.Identity(), easel.BuildPath().RectTo(2, 2, 4, 4).Build())

	if got := mask.At(3, 3); got != 255 {
		t.Errorf("mask.At(3,3) = %d, want 255", got)
	}
	if got := mask.At(8, 8); got != 0 {
		t.Errorf("mask.At(8,8) = %d, want 0", got)
	}
}
