package easel

// Spread governs how a gradient is sampled outside its defined [0, 1] range.
type Spread int

const (
	// SpreadPad extends the edge colors beyond the gradient bounds.
	SpreadPad Spread = iota
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
)

// String returns the wire name of the spread mode.
func (s Spread) String() string {
	switch s {
	case SpreadPad:
		return "Pad"
	case SpreadReflect:
		return "Reflect"
	case SpreadRepeat:
		return "Repeat"
	}
	return "Unknown"
}

// ParseSpread maps a wire name to a Spread.
// Returns false for unrecognized names.
func ParseSpread(name string) (Spread, bool) {
	switch name {
	case "Pad":
		return SpreadPad, true
	case "Reflect":
		return SpreadReflect, true
	case "Repeat":
		return SpreadRepeat, true
	}
	return SpreadPad, false
}

// GradientStop is a color at a position within a gradient.
// Position is nominally in [0, 1].
type GradientStop struct {
	Position float32
	Color    Color
}

// Paint describes how a filled or stroked region is colored.
// This is a sealed interface; only types in this package implement it.
//
// Gradient paints carry their stops in producer order. The decoder does not
// re-sort them; ordering for interpolation is the rasterizer's concern.
type Paint interface {
	isPaint()
}

// SolidPaint fills with a single color.
type SolidPaint struct {
	Color Color
}

func (SolidPaint) isPaint() {}

// LinearGradientPaint fills with a gradient along the line from Start to End.
type LinearGradientPaint struct {
	Stops  []GradientStop
	Start  Point
	End    Point
	Spread Spread
}

func (LinearGradientPaint) isPaint() {}

// RadialGradientPaint fills with a gradient radiating from Center out to
// Radius.
type RadialGradientPaint struct {
	Stops  []GradientStop
	Center Point
	Radius float32
	Spread Spread
}

func (RadialGradientPaint) isPaint() {}

// TwoCircleRadialGradientPaint fills with a gradient between two circles,
// interpolating both center and radius.
type TwoCircleRadialGradientPaint struct {
	Stops   []GradientStop
	Center1 Point
	Radius1 float32
	Center2 Point
	Radius2 float32
	Spread  Spread
}

func (TwoCircleRadialGradientPaint) isPaint() {}
