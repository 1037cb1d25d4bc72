package raster

import (
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

func grayStops() []easel.GradientStop {
	return []easel.GradientStop{
		{Position: 0, Color: easel.Opaque(0, 0, 0)},
		{Position: 1, Color: easel.Opaque(255, 255, 255)},
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	r := New()
	dst := surface.NewPixmap(16, 1)
	paint := easel.LinearGradientPaint{
		Stops:  grayStops(),
		Start:  easel.Pt(0, 0),
		End:    easel.Pt(16, 0),
		Spread: easel.SpreadPad,
	}
	r.FillRect(dst, easel.Identity(), nil, 0, 0, 16, 1, paint)

	left := dst.ColorAt(0, 0)
	right := dst.ColorAt(15, 0)
	if left.R > 16 {
		t.Errorf("left end R = %d, want near 0", left.R)
	}
	if right.R < 239 {
		t.Errorf("right end R = %d, want near 255", right.R)
	}
	mid := dst.ColorAt(8, 0)
	if mid.R <= left.R || mid.R >= right.R {
		t.Errorf("midpoint R = %d, want between %d and %d", mid.R, left.R, right.R)
	}
}

func TestLinearGradientUnsortedStops(t *testing.T) {
	// Stops arrive in producer order; sampling must sort internally.
	stops := []easel.GradientStop{
		{Position: 1, Color: easel.Opaque(255, 255, 255)},
		{Position: 0, Color: easel.Opaque(0, 0, 0)},
	}
	sh := newLinearShader(easel.LinearGradientPaint{
		Stops:  stops,
		Start:  easel.Pt(0, 0),
		End:    easel.Pt(10, 0),
		Spread: easel.SpreadPad,
	}, easel.Identity())

	if got := sh.at(0.5, 0.5); got.r > 32 {
		t.Errorf("near start r = %d, want dark", got.r)
	}
	if got := sh.at(9.5, 0.5); got.r < 223 {
		t.Errorf("near end r = %d, want bright", got.r)
	}
}

func TestApplySpread(t *testing.T) {
	tests := []struct {
		name   string
		spread easel.Spread
		t      float32
		want   float32
	}{
		{"pad below", easel.SpreadPad, -0.5, 0},
		{"pad above", easel.SpreadPad, 1.5, 1},
		{"pad inside", easel.SpreadPad, 0.25, 0.25},
		{"repeat above", easel.SpreadRepeat, 1.25, 0.25},
		{"repeat far", easel.SpreadRepeat, 3.75, 0.75},
		{"reflect above", easel.SpreadReflect, 1.25, 0.75},
		{"reflect period", easel.SpreadReflect, 2.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t2 *testing.T) {
			got := applySpread(tt.t, tt.spread)
			if diff := got - tt.want; diff > 1e-5 || diff < -1e-5 {
				t2.Errorf("applySpread(%v, %v) = %v, want %v", tt.t, tt.spread, got, tt.want)
			}
		})
	}
}

func TestRadialGradientCenterAndEdge(t *testing.T) {
	sh := newRadialShader(easel.RadialGradientPaint{
		Stops:  grayStops(),
		Center: easel.Pt(8, 8),
		Radius: 8,
		Spread: easel.SpreadPad,
	}, easel.Identity())

	if got := sh.at(8, 8); got.r > 8 {
		t.Errorf("center r = %d, want near 0", got.r)
	}
	if got := sh.at(16, 8); got.r < 247 {
		t.Errorf("edge r = %d, want near 255", got.r)
	}
}

func TestTwoCircleGradient(t *testing.T) {
	// Concentric circles: behaves like a radial gradient between r=0 and
	// r=10.
	sh := newTwoCircleShader(easel.TwoCircleRadialGradientPaint{
		Stops:   grayStops(),
		Center1: easel.Pt(0, 0),
		Radius1: 0,
		Center2: easel.Pt(0, 0),
		Radius2: 10,
		Spread:  easel.SpreadPad,
	}, easel.Identity())

	if got := sh.at(0, 0); got.r > 8 {
		t.Errorf("center r = %d, want near 0", got.r)
	}
	if got := sh.at(10, 0); got.r < 247 {
		t.Errorf("outer circle r = %d, want near 255", got.r)
	}
	near := sh.at(5, 0)
	if near.r < 100 || near.r > 155 {
		t.Errorf("halfway r = %d, want near 128", near.r)
	}
}

func TestGradientUnderTransform(t *testing.T) {
	// The gradient is defined in user space: scaling the transform moves
	// the color ramp with the geometry.
	paint := easel.LinearGradientPaint{
		Stops:  grayStops(),
		Start:  easel.Pt(0, 0),
		End:    easel.Pt(8, 0),
		Spread: easel.SpreadPad,
	}
	sh := newShader(paint, easel.ScaleMatrix(2, 2))

	// Device x=16 maps back to user x=8, the gradient end.
	if got := sh.at(16, 0); got.r < 247 {
		t.Errorf("device (16,0) r = %d, want near 255", got.r)
	}
	if got := sh.at(8, 0); got.r < 100 || got.r > 155 {
		t.Errorf("device (8,0) r = %d, want near 128", got.r)
	}
}

func TestSolidShaderPremultiplies(t *testing.T) {
	sh := newShader(easel.SolidPaint{Color: easel.NewColor(128, 255, 0, 0)}, easel.Identity())
	got := sh.at(0, 0)
	if got.a != 128 {
		t.Errorf("a = %d, want 128", got.a)
	}
	if got.r < 127 || got.r > 129 {
		t.Errorf("premultiplied r = %d, want ~128", got.r)
	}
}
