package easel

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// ParseLineCap maps a wire name to a LineCap.
// Returns false for unrecognized names.
func ParseLineCap(name string) (LineCap, bool) {
	switch name {
	case "Butt":
		return LineCapButt, true
	case "Round":
		return LineCapRound, true
	case "Square":
		return LineCapSquare, true
	}
	return LineCapButt, false
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// ParseLineJoin maps a wire name to a LineJoin.
// Returns false for unrecognized names.
func ParseLineJoin(name string) (LineJoin, bool) {
	switch name {
	case "Miter":
		return LineJoinMiter, true
	case "Round":
		return LineJoinRound, true
	case "Bevel":
		return LineJoinBevel, true
	}
	return LineJoinMiter, false
}

// StrokeStyle defines how a path outline is stroked.
type StrokeStyle struct {
	// Width is the stroke width in user units. Must be >= 0.
	Width float32

	// Cap is the shape of open endpoints.
	Cap LineCap

	// Join is the shape of segment joins.
	Join LineJoin

	// MiterLimit converts miter joins that would extend beyond
	// MiterLimit * Width/2 into bevels.
	MiterLimit float32

	// DashArray holds alternating on/off lengths. Empty means solid.
	DashArray []float32

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float32
}

// DefaultStrokeStyle returns a solid 1-unit stroke with butt caps and miter
// joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4,
	}
}

// IsDashed returns true if the style produces a dashed stroke.
func (s StrokeStyle) IsDashed() bool {
	for _, l := range s.DashArray {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the style.
func (s StrokeStyle) Clone() StrokeStyle {
	out := s
	if s.DashArray != nil {
		out.DashArray = make([]float32, len(s.DashArray))
		copy(out.DashArray, s.DashArray)
	}
	return out
}
