package easel

// Segment represents a single segment in a path.
// This is a sealed interface; only types in this package implement it.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// ArcTo draws a circular arc around a center point. StartAngle and
// SweepAngle are in radians; a positive sweep runs clockwise in the
// top-left-origin coordinate system.
type ArcTo struct {
	Center     Point
	Radius     float32
	StartAngle float32
	SweepAngle float32
}

func (ArcTo) isSegment() {}

// RectTo adds an axis-aligned rectangle as its own closed subpath.
type RectTo struct {
	Point  Point
	Width  float32
	Height float32
}

func (RectTo) isSegment() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isSegment() {}

// Path is an ordered, immutable sequence of segments. Build one with a
// PathBuilder; once built it never changes for the duration of a draw call.
//
// An empty path is valid and draws nothing. There is no implicit initial
// MoveTo: a path beginning with LineTo draws from an engine-defined origin,
// so callers are expected to always start with MoveTo.
type Path struct {
	segments []Segment
}

// Segments returns the path segments in input order.
// The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}
