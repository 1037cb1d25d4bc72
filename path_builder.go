package easel

// PathBuilder accumulates path segments in input order and produces an
// immutable Path. All methods return the builder for chaining.
type PathBuilder struct {
	segments []Segment
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{segments: make([]Segment, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float32) *PathBuilder {
	b.segments = append(b.segments, MoveTo{Point: Pt(x, y)})
	return b
}

// LineTo draws a line to (x, y).
func (b *PathBuilder) LineTo(x, y float32) *PathBuilder {
	b.segments = append(b.segments, LineTo{Point: Pt(x, y)})
	return b
}

// QuadTo draws a quadratic Bezier curve with control point (cx, cy).
func (b *PathBuilder) QuadTo(cx, cy, x, y float32) *PathBuilder {
	b.segments = append(b.segments, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	return b
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *PathBuilder {
	b.segments = append(b.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	return b
}

// ArcTo draws a circular arc around center (cx, cy) with the given radius,
// from startAngle sweeping by sweepAngle. Angles are in radians.
func (b *PathBuilder) ArcTo(cx, cy, r, startAngle, sweepAngle float32) *PathBuilder {
	b.segments = append(b.segments, ArcTo{
		Center:     Pt(cx, cy),
		Radius:     r,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
	})
	return b
}

// RectTo adds an axis-aligned rectangle as its own closed subpath.
func (b *PathBuilder) RectTo(x, y, w, h float32) *PathBuilder {
	b.segments = append(b.segments, RectTo{Point: Pt(x, y), Width: w, Height: h})
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.segments = append(b.segments, Close{})
	return b
}

// Append adds an already-constructed segment.
func (b *PathBuilder) Append(seg Segment) *PathBuilder {
	b.segments = append(b.segments, seg)
	return b
}

// Build returns the constructed immutable path. The builder must not be
// reused after Build.
func (b *PathBuilder) Build() *Path {
	return &Path{segments: b.segments}
}
