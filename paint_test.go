package easel

import "testing"

func TestParseSpread(t *testing.T) {
	tests := []struct {
		name string
		want Spread
		ok   bool
	}{
		{"Pad", SpreadPad, true},
		{"Reflect", SpreadReflect, true},
		{"Repeat", SpreadRepeat, true},
		{"pad", SpreadPad, false},
		{"", SpreadPad, false},
		{"Mirror", SpreadPad, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSpread(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSpread(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseLineCapAndJoin(t *testing.T) {
	capTests := []struct {
		name string
		want LineCap
		ok   bool
	}{
		{"Butt", LineCapButt, true},
		{"Round", LineCapRound, true},
		{"Square", LineCapSquare, true},
		{"butt", LineCapButt, false},
	}
	for _, tt := range capTests {
		if got, ok := ParseLineCap(tt.name); ok != tt.ok || got != tt.want {
			t.Errorf("ParseLineCap(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	joinTests := []struct {
		name string
		want LineJoin
		ok   bool
	}{
		{"Miter", LineJoinMiter, true},
		{"Round", LineJoinRound, true},
		{"Bevel", LineJoinBevel, true},
		{"Mitre", LineJoinMiter, false},
	}
	for _, tt := range joinTests {
		if got, ok := ParseLineJoin(tt.name); ok != tt.ok || got != tt.want {
			t.Errorf("ParseLineJoin(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorLerp(t *testing.T) {
	a := Opaque(0, 0, 0)
	b := Opaque(255, 255, 255)
	mid := a.Lerp(b, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Errorf("Lerp midpoint R = %d, want ~127", mid.R)
	}
	if got := a.Lerp(b, -1); got != a {
		t.Errorf("Lerp(t<0) = %+v, want start color", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp(t>1) = %+v, want end color", got)
	}
}

func TestStrokeStyleIsDashed(t *testing.T) {
	tests := []struct {
		name string
		arr  []float32
		want bool
	}{
		{"nil", nil, false},
		{"empty", []float32{}, false},
		{"zeros", []float32{0, 0}, false},
		{"dashed", []float32{4, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStrokeStyle()
			s.DashArray = tt.arr
			if got := s.IsDashed(); got != tt.want {
				t.Errorf("IsDashed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrokeStyleClone(t *testing.T) {
	s := DefaultStrokeStyle()
	s.DashArray = []float32{4, 2}

	c := s.Clone()
	c.DashArray[0] = 9
	if s.DashArray[0] != 4 {
		t.Errorf("DashArray[0] = %v after mutating clone, want 4", s.DashArray[0])
	}

	solid := DefaultStrokeStyle()
	if got := solid.Clone(); got.DashArray != nil {
		t.Errorf("Clone of solid style has DashArray %v, want nil", got.DashArray)
	}
}
