package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/easel"
)

// flatTolerance bounds the chord error when subdividing curves, in user
// units.
const flatTolerance = 0.25

// polyline is a flattened subpath.
type polyline struct {
	pts    []easel.Point
	closed bool
}

// flatten converts a path into polylines in user space. Curves and arcs
// are subdivided into line segments; rectangles become their own closed
// subpaths.
//
// A path that starts without MoveTo draws from the origin: the first
// segment opens a subpath at (0, 0).
func flatten(path *easel.Path) []polyline {
	f := flattener{current: easel.Pt(0, 0)}
	for _, seg := range path.Segments() {
		switch s := seg.(type) {
		case easel.MoveTo:
			f.moveTo(s.Point)
		case easel.LineTo:
			f.lineTo(s.Point)
		case easel.QuadTo:
			f.quadTo(s.Control, s.Point)
		case easel.CubicTo:
			f.cubicTo(s.Control1, s.Control2, s.Point)
		case easel.ArcTo:
			f.arcTo(s.Center, s.Radius, s.StartAngle, s.SweepAngle)
		case easel.RectTo:
			f.rectTo(s.Point, s.Width, s.Height)
		case easel.Close:
			f.close()
		}
	}
	f.finish()
	return f.out
}

// transformPolylines maps every point through the matrix.
func transformPolylines(polys []polyline, tr easel.Matrix) []polyline {
	if tr.IsIdentity() {
		return polys
	}
	out := make([]polyline, len(polys))
	for i, poly := range polys {
		pts := make([]easel.Point, len(poly.pts))
		for j, p := range poly.pts {
			pts[j] = tr.TransformPoint(p)
		}
		out[i] = polyline{pts: pts, closed: poly.closed}
	}
	return out
}

type flattener struct {
	out     []polyline
	active  []easel.Point
	start   easel.Point
	current easel.Point
}

func (f *flattener) moveTo(p easel.Point) {
	f.finish()
	f.active = append(f.active, p)
	f.start = p
	f.current = p
}

// open ensures an active subpath exists, starting one at the current point
// if needed.
func (f *flattener) open() {
	if len(f.active) == 0 {
		f.active = append(f.active, f.current)
		f.start = f.current
	}
}

func (f *flattener) lineTo(p easel.Point) {
	f.open()
	f.active = append(f.active, p)
	f.current = p
}

func (f *flattener) quadTo(c, p easel.Point) {
	f.open()
	n := curveSteps(f.current.Distance(c) + c.Distance(p))
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		// De Casteljau evaluation of the quadratic.
		a := f.current.Scale(mt * mt)
		b := c.Scale(2 * mt * t)
		d := p.Scale(t * t)
		f.active = append(f.active, a.Add(b).Add(d))
	}
	f.current = p
}

func (f *flattener) cubicTo(c1, c2, p easel.Point) {
	f.open()
	n := curveSteps(f.current.Distance(c1) + c1.Distance(c2) + c2.Distance(p))
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		a := f.current.Scale(mt * mt * mt)
		b := c1.Scale(3 * mt * mt * t)
		c := c2.Scale(3 * mt * t * t)
		d := p.Scale(t * t * t)
		f.active = append(f.active, a.Add(b).Add(c).Add(d))
	}
	f.current = p
}

func (f *flattener) arcTo(center easel.Point, r, start, sweep float32) {
	first := easel.Pt(center.X+r*math32.Cos(start), center.Y+r*math32.Sin(start))
	if len(f.active) == 0 {
		f.moveTo(first)
	} else if f.current.Distance(first) > 1e-6 {
		f.lineTo(first)
	}

	n := int(math32.Ceil(math32.Abs(sweep) / (math32.Pi / 32)))
	if n < 2 {
		n = 2
	}
	for i := 1; i <= n; i++ {
		a := start + sweep*float32(i)/float32(n)
		f.active = append(f.active, easel.Pt(center.X+r*math32.Cos(a), center.Y+r*math32.Sin(a)))
	}
	f.current = f.active[len(f.active)-1]
}

func (f *flattener) rectTo(p easel.Point, w, h float32) {
	f.finish()
	f.out = append(f.out, polyline{
		pts: []easel.Point{
			p,
			easel.Pt(p.X+w, p.Y),
			easel.Pt(p.X+w, p.Y+h),
			easel.Pt(p.X, p.Y+h),
		},
		closed: true,
	})
	f.start = p
	f.current = p
}

func (f *flattener) close() {
	if len(f.active) > 0 {
		f.out = append(f.out, polyline{pts: f.active, closed: true})
		f.active = nil
	}
	f.current = f.start
}

// finish flushes an unclosed active subpath.
func (f *flattener) finish() {
	if len(f.active) > 0 {
		f.out = append(f.out, polyline{pts: f.active})
	}
	f.active = nil
}

// curveSteps picks a subdivision count from the control polygon length.
func curveSteps(chord float32) int {
	n := int(math32.Ceil(math32.Sqrt(chord / flatTolerance)))
	if n < 4 {
		return 4
	}
	if n > 64 {
		return 64
	}
	return n
}
