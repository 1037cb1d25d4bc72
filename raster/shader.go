package raster

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/gogpu/easel"
)

// premultRGBA is a premultiplied color sample.
type premultRGBA struct {
	a, r, g, b uint8
}

func premult(c easel.Color) premultRGBA {
	if c.A == 255 {
		return premultRGBA{a: 255, r: c.R, g: c.G, b: c.B}
	}
	return premultRGBA{
		a: c.A,
		r: mulDiv255(c.R, c.A),
		g: mulDiv255(c.G, c.A),
		b: mulDiv255(c.B, c.A),
	}
}

// shader produces the premultiplied source color at a device-space point.
type shader interface {
	at(x, y float32) premultRGBA
}

// newShader builds a shader for the paint. Gradients are defined in user
// space, so the device point is mapped back through the inverse transform
// before evaluation.
func newShader(paint easel.Paint, tr easel.Matrix) shader {
	switch p := paint.(type) {
	case easel.SolidPaint:
		return solidShader{color: premult(p.Color)}
	case easel.LinearGradientPaint:
		return newLinearShader(p, tr)
	case easel.RadialGradientPaint:
		return newRadialShader(p, tr)
	case easel.TwoCircleRadialGradientPaint:
		return newTwoCircleShader(p, tr)
	default:
		return solidShader{}
	}
}

type solidShader struct {
	color premultRGBA
}

func (s solidShader) at(x, y float32) premultRGBA { return s.color }

// ramp holds gradient stops sorted by position, ready for sampling.
type ramp struct {
	stops  []easel.GradientStop
	spread easel.Spread
}

func newRamp(stops []easel.GradientStop, spread easel.Spread) ramp {
	sorted := make([]easel.GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return ramp{stops: sorted, spread: spread}
}

// sample evaluates the ramp at offset t, applying the spread mode first.
func (r ramp) sample(t float32) premultRGBA {
	if len(r.stops) == 0 {
		return premultRGBA{}
	}
	t = applySpread(t, r.spread)

	if t <= r.stops[0].Position {
		return premult(r.stops[0].Color)
	}
	last := len(r.stops) - 1
	if t >= r.stops[last].Position {
		return premult(r.stops[last].Color)
	}
	for i := 1; i <= last; i++ {
		if t > r.stops[i].Position {
			continue
		}
		lo, hi := r.stops[i-1], r.stops[i]
		span := hi.Position - lo.Position
		if span <= 0 {
			return premult(hi.Color)
		}
		return premult(lo.Color.Lerp(hi.Color, (t-lo.Position)/span))
	}
	return premult(r.stops[last].Color)
}

// applySpread folds an offset outside [0, 1] back into range.
func applySpread(t float32, spread easel.Spread) float32 {
	switch spread {
	case easel.SpreadRepeat:
		t -= math32.Floor(t)
		return t
	case easel.SpreadReflect:
		t = math32.Abs(t)
		period := t - 2*math32.Floor(t/2)
		if period > 1 {
			return 2 - period
		}
		return period
	default: // pad
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

type linearShader struct {
	ramp    ramp
	inv     easel.Matrix
	start   easel.Point
	dir     easel.Point // end - start
	lenSq   float32
	degener bool
}

func newLinearShader(p easel.LinearGradientPaint, tr easel.Matrix) shader {
	dir := p.End.Sub(p.Start)
	lenSq := dir.Dot(dir)
	return &linearShader{
		ramp:    newRamp(p.Stops, p.Spread),
		inv:     tr.Invert(),
		start:   p.Start,
		dir:     dir,
		lenSq:   lenSq,
		degener: lenSq < 1e-12,
	}
}

func (s *linearShader) at(x, y float32) premultRGBA {
	if s.degener {
		return s.ramp.sample(0)
	}
	p := s.inv.TransformPoint(easel.Pt(x, y))
	t := p.Sub(s.start).Dot(s.dir) / s.lenSq
	return s.ramp.sample(t)
}

type radialShader struct {
	ramp   ramp
	inv    easel.Matrix
	center easel.Point
	radius float32
}

func newRadialShader(p easel.RadialGradientPaint, tr easel.Matrix) shader {
	return &radialShader{
		ramp:   newRamp(p.Stops, p.Spread),
		inv:    tr.Invert(),
		center: p.Center,
		radius: p.Radius,
	}
}

func (s *radialShader) at(x, y float32) premultRGBA {
	if s.radius <= 0 {
		return s.ramp.sample(0)
	}
	p := s.inv.TransformPoint(easel.Pt(x, y))
	return s.ramp.sample(p.Distance(s.center) / s.radius)
}

// twoCircleShader is the two-point conical gradient: the offset t is where
// the point lies on the family of circles interpolating (center1, radius1)
// to (center2, radius2).
type twoCircleShader struct {
	ramp ramp
	inv  easel.Matrix
	c1   easel.Point
	r1   float32
	cd   easel.Point // c2 - c1
	rd   float32     // r2 - r1
	a    float32     // cd·cd - rd²
}

func newTwoCircleShader(p easel.TwoCircleRadialGradientPaint, tr easel.Matrix) shader {
	cd := p.Center2.Sub(p.Center1)
	rd := p.Radius2 - p.Radius1
	return &twoCircleShader{
		ramp: newRamp(p.Stops, p.Spread),
		inv:  tr.Invert(),
		c1:   p.Center1,
		r1:   p.Radius1,
		cd:   cd,
		rd:   rd,
		a:    cd.Dot(cd) - rd*rd,
	}
}

func (s *twoCircleShader) at(x, y float32) premultRGBA {
	p := s.inv.TransformPoint(easel.Pt(x, y))
	d := p.Sub(s.c1)
	b := d.Dot(s.cd) + s.r1*s.rd
	c := d.Dot(d) - s.r1*s.r1

	var t float32
	if math32.Abs(s.a) < 1e-6 {
		// Circles grow at the rate they move: linear equation.
		if math32.Abs(b) < 1e-6 {
			return premultRGBA{}
		}
		t = c / (2 * b)
	} else {
		disc := b*b - s.a*c
		if disc < 0 {
			return premultRGBA{}
		}
		sq := math32.Sqrt(disc)
		t = (b + sq) / s.a
		if s.r1+t*s.rd < 0 {
			t = (b - sq) / s.a
			if s.r1+t*s.rd < 0 {
				return premultRGBA{}
			}
		}
	}
	return s.ramp.sample(t)
}
