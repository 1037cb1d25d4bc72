package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/easel"
)

// joinCircleSegments is the vertex count for round caps and joins.
const joinCircleSegments = 16

// expandStroke converts subpaths into closed polygons covering the stroked
// outline: one quad per segment plus cap and join geometry. The polygons
// overlap freely; they are meant to be unioned into a coverage mask.
func expandStroke(polys []polyline, style easel.StrokeStyle) []polyline {
	if style.IsDashed() {
		polys = applyDash(polys, style.DashArray, style.DashOffset)
	}

	hw := style.Width / 2
	var out []polyline
	for _, poly := range polys {
		out = appendStrokedSubpath(out, poly, hw, style)
	}
	return out
}

func appendStrokedSubpath(out []polyline, poly polyline, hw float32, style easel.StrokeStyle) []polyline {
	pts := poly.pts
	if poly.closed && len(pts) > 1 {
		pts = append(append([]easel.Point{}, pts...), pts[0])
	}
	if len(pts) < 2 {
		// A degenerate subpath still paints a round cap dot.
		if len(pts) == 1 && style.Cap == easel.LineCapRound {
			return append(out, circlePolygon(pts[0], hw))
		}
		return out
	}

	// Segment quads.
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		n, ok := leftNormal(a, b)
		if !ok {
			continue
		}
		off := n.Scale(hw)
		out = append(out, polyline{
			pts:    []easel.Point{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)},
			closed: true,
		})
	}

	// Joins at interior vertices; a closed subpath also joins at the seam.
	last := len(pts) - 1
	for i := 1; i < last; i++ {
		out = appendJoin(out, pts[i-1], pts[i], pts[i+1], hw, style)
	}
	if poly.closed {
		out = appendJoin(out, pts[last-1], pts[0], pts[1], hw, style)
	} else {
		out = appendCap(out, pts[1], pts[0], hw, style.Cap)
		out = appendCap(out, pts[last-1], pts[last], hw, style.Cap)
	}
	return out
}

// leftNormal is the unit normal to the left of the a->b direction.
func leftNormal(a, b easel.Point) (easel.Point, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-6 {
		return easel.Point{}, false
	}
	return easel.Pt(-d.Y/l, d.X/l), true
}

// appendCap closes the stroke at end, where from is the adjacent point on
// the subpath.
func appendCap(out []polyline, from, end easel.Point, hw float32, lineCap easel.LineCap) []polyline {
	switch lineCap {
	case easel.LineCapRound:
		return append(out, circlePolygon(end, hw))
	case easel.LineCapSquare:
		n, ok := leftNormal(from, end)
		if !ok {
			return out
		}
		dir := end.Sub(from)
		dir = dir.Scale(hw / dir.Length())
		off := n.Scale(hw)
		return append(out, polyline{
			pts: []easel.Point{
				end.Add(off),
				end.Add(off).Add(dir),
				end.Sub(off).Add(dir),
				end.Sub(off),
			},
			closed: true,
		})
	default: // butt
		return out
	}
}

// appendJoin fills the wedge on the outer side of the corner at p.
func appendJoin(out []polyline, prev, p, next easel.Point, hw float32, style easel.StrokeStyle) []polyline {
	if style.Join == easel.LineJoinRound {
		return append(out, circlePolygon(p, hw))
	}

	n1, ok1 := leftNormal(prev, p)
	n2, ok2 := leftNormal(p, next)
	if !ok1 || !ok2 {
		return out
	}
	d1 := p.Sub(prev)
	d2 := next.Sub(p)
	cross := d1.X*d2.Y - d1.Y*d2.X
	if math32.Abs(cross) < 1e-9 {
		return out // collinear, the quads already meet
	}
	// Turning left puts the outer side on the right, so flip the normals.
	if cross > 0 {
		n1 = n1.Scale(-1)
		n2 = n2.Scale(-1)
	}
	o1 := p.Add(n1.Scale(hw))
	o2 := p.Add(n2.Scale(hw))

	if style.Join == easel.LineJoinMiter {
		bis := n1.Add(n2)
		bl := bis.Length()
		if bl > 1e-6 {
			m := bis.Scale(1 / bl)
			cosHalf := m.Dot(n1)
			if cosHalf > 1e-6 {
				miterLen := hw / cosHalf
				if miterLen/hw <= style.MiterLimit {
					tip := p.Add(m.Scale(miterLen))
					return append(out, polyline{
						pts:    []easel.Point{p, o1, tip, o2},
						closed: true,
					})
				}
			}
		}
	}
	// Bevel, or miter past the limit.
	return append(out, polyline{pts: []easel.Point{p, o1, o2}, closed: true})
}

func circlePolygon(center easel.Point, r float32) polyline {
	pts := make([]easel.Point, joinCircleSegments)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / joinCircleSegments
		s, c := math32.Sincos(a)
		pts[i] = easel.Pt(center.X+r*c, center.Y+r*s)
	}
	return polyline{pts: pts, closed: true}
}

// applyDash splits subpaths into on-pattern runs. A pattern with an odd
// entry count repeats doubled, matching the usual canvas semantics.
func applyDash(polys []polyline, pattern []float32, offset float32) []polyline {
	norm := normalizeDashes(pattern)
	if norm == nil {
		return polys
	}

	var out []polyline
	for _, poly := range polys {
		pts := poly.pts
		if poly.closed && len(pts) > 1 {
			pts = append(append([]easel.Point{}, pts...), pts[0])
		}
		out = dashSubpath(out, pts, norm, offset)
	}
	return out
}

// normalizeDashes returns a valid even-length pattern or nil when dashing
// should be skipped entirely.
func normalizeDashes(pattern []float32) []float32 {
	var total float32
	for _, d := range pattern {
		if d < 0 {
			return nil
		}
		total += d
	}
	if len(pattern) == 0 || total <= 0 {
		return nil
	}
	if len(pattern)%2 == 1 {
		doubled := make([]float32, 0, len(pattern)*2)
		doubled = append(doubled, pattern...)
		doubled = append(doubled, pattern...)
		return doubled
	}
	out := make([]float32, len(pattern))
	copy(out, pattern)
	return out
}

func dashSubpath(out []polyline, pts []easel.Point, pattern []float32, offset float32) []polyline {
	if len(pts) < 2 {
		return out
	}
	var patternLen float32
	for _, d := range pattern {
		patternLen += d
	}
	// Phase into the pattern, handling negative offsets.
	phase := math32.Mod(offset, patternLen)
	if phase < 0 {
		phase += patternLen
	}
	idx := 0
	remain := pattern[0]
	for phase > 0 {
		if phase < remain {
			remain -= phase
			break
		}
		phase -= remain
		idx = (idx + 1) % len(pattern)
		remain = pattern[idx]
	}
	on := idx%2 == 0

	var run []easel.Point
	flush := func() {
		if len(run) > 1 {
			out = append(out, polyline{pts: run})
		}
		run = nil
	}

	pos := pts[0]
	if on {
		run = append(run, pos)
	}
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pos)
		segLen := seg.Length()
		for segLen > 0 {
			if remain > segLen {
				remain -= segLen
				pos = pts[i]
				if on {
					run = append(run, pos)
				}
				break
			}
			// The pattern entry ends inside this segment.
			pos = pos.Add(seg.Scale(remain / segLen))
			segLen -= remain
			seg = pts[i].Sub(pos)
			if on {
				run = append(run, pos)
				flush()
			} else {
				run = append(run, pos) // start of the next dash
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
	}
	flush()
	return out
}
