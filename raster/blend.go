package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/easel"
)

// BlendFunc composites one premultiplied source pixel over one
// premultiplied destination pixel.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// mulDiv255 is (a*b)/255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

func clampAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// blendFunc selects the compositing function for a mode. Unknown modes
// fall back to source-over.
func blendFunc(mode easel.BlendMode) BlendFunc {
	switch mode {
	case easel.BlendClear:
		return blendClear
	case easel.BlendSrc:
		return blendSrc
	case easel.BlendDst:
		return blendDst
	case easel.BlendSrcOver:
		return blendSrcOver
	case easel.BlendDstOver:
		return blendDstOver
	case easel.BlendSrcIn:
		return blendSrcIn
	case easel.BlendDstIn:
		return blendDstIn
	case easel.BlendSrcOut:
		return blendSrcOut
	case easel.BlendDstOut:
		return blendDstOut
	case easel.BlendSrcAtop:
		return blendSrcAtop
	case easel.BlendDstAtop:
		return blendDstAtop
	case easel.BlendXor:
		return blendXor
	case easel.BlendAdd:
		return blendAdd
	case easel.BlendScreen:
		return separable(screen)
	case easel.BlendOverlay:
		return separable(overlay)
	case easel.BlendDarken:
		return separable(darken)
	case easel.BlendLighten:
		return separable(lighten)
	case easel.BlendColorDodge:
		return separable(colorDodge)
	case easel.BlendColorBurn:
		return separable(colorBurn)
	case easel.BlendHardLight:
		return separable(hardLight)
	case easel.BlendSoftLight:
		return separable(softLight)
	case easel.BlendDifference:
		return separable(difference)
	case easel.BlendExclusion:
		return separable(exclusion)
	case easel.BlendMultiply:
		return separable(multiply)
	case easel.BlendHue:
		return nonSeparable(blendHue)
	case easel.BlendSaturation:
		return nonSeparable(blendSaturation)
	case easel.BlendColor:
		return nonSeparable(blendColor)
	case easel.BlendLuminosity:
		return nonSeparable(blendLuminosity)
	default:
		return blendSrcOver
	}
}

// Porter-Duff operators on premultiplied components.

func blendClear(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func blendDst(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	return clampAdd(sr, mulDiv255(dr, isa)),
		clampAdd(sg, mulDiv255(dg, isa)),
		clampAdd(sb, mulDiv255(db, isa)),
		clampAdd(sa, mulDiv255(da, isa))
}

func blendDstOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return blendSrcOver(dr, dg, db, da, sr, sg, sb, sa)
}

func blendSrcIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendDstIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func blendSrcOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ida := 255 - da
	return mulDiv255(sr, ida), mulDiv255(sg, ida), mulDiv255(sb, ida), mulDiv255(sa, ida)
}

func blendDstOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	return mulDiv255(dr, isa), mulDiv255(dg, isa), mulDiv255(db, isa), mulDiv255(da, isa)
}

func blendSrcAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	return clampAdd(mulDiv255(sr, da), mulDiv255(dr, isa)),
		clampAdd(mulDiv255(sg, da), mulDiv255(dg, isa)),
		clampAdd(mulDiv255(sb, da), mulDiv255(db, isa)),
		da
}

func blendDstAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return blendSrcAtop(dr, dg, db, da, sr, sg, sb, sa)
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	ida := 255 - da
	return clampAdd(mulDiv255(sr, ida), mulDiv255(dr, isa)),
		clampAdd(mulDiv255(sg, ida), mulDiv255(dg, isa)),
		clampAdd(mulDiv255(sb, ida), mulDiv255(db, isa)),
		clampAdd(mulDiv255(sa, ida), mulDiv255(da, isa))
}

func blendAdd(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return clampAdd(sr, dr), clampAdd(sg, dg), clampAdd(sb, db), clampAdd(sa, da)
}

// Separable blend modes per the W3C compositing spec. B operates on
// unpremultiplied channels in [0, 1]; the wrapper handles the Porter-Duff
// combination with both alphas.
type blendChannel func(cs, cb float32) float32

func separable(blend blendChannel) BlendFunc {
	return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
		saf := float32(sa) / 255
		daf := float32(da) / 255
		csr, csg, csb := unpremultF(sr, sa), unpremultF(sg, sa), unpremultF(sb, sa)
		cbr, cbg, cbb := unpremultF(dr, da), unpremultF(dg, da), unpremultF(db, da)

		ra := saf + daf - saf*daf
		combine := func(cs, cb, bl float32) float32 {
			// Premultiplied result channel.
			return cs*saf*(1-daf) + cb*daf*(1-saf) + bl*saf*daf
		}
		return toByte(combine(csr, cbr, blend(csr, cbr))),
			toByte(combine(csg, cbg, blend(csg, cbg))),
			toByte(combine(csb, cbb, blend(csb, cbb))),
			toByte(ra)
	}
}

func unpremultF(c, a uint8) float32 {
	if a == 0 {
		return 0
	}
	return float32(c) / float32(a)
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func multiply(cs, cb float32) float32 { return cs * cb }

func screen(cs, cb float32) float32 { return cs + cb - cs*cb }

func overlay(cs, cb float32) float32 { return hardLight(cb, cs) }

func darken(cs, cb float32) float32 {
	if cb < cs {
		return cb
	}
	return cs
}

func lighten(cs, cb float32) float32 {
	if cb > cs {
		return cb
	}
	return cs
}

func colorDodge(cs, cb float32) float32 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	v := cb / (1 - cs)
	if v > 1 {
		return 1
	}
	return v
}

func colorBurn(cs, cb float32) float32 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	v := 1 - (1-cb)/cs
	if v < 0 {
		return 0
	}
	return v
}

func hardLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return multiply(2*cs, cb)
	}
	return screen(2*cs-1, cb)
}

func softLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math32.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cs, cb float32) float32 {
	if cb > cs {
		return cb - cs
	}
	return cs - cb
}

func exclusion(cs, cb float32) float32 { return cs + cb - 2*cs*cb }

// Non-separable blend modes operate on the full color triple.
type blendTriple func(csr, csg, csb, cbr, cbg, cbb float32) (float32, float32, float32)

func nonSeparable(blend blendTriple) BlendFunc {
	return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
		saf := float32(sa) / 255
		daf := float32(da) / 255
		csr, csg, csb := unpremultF(sr, sa), unpremultF(sg, sa), unpremultF(sb, sa)
		cbr, cbg, cbb := unpremultF(dr, da), unpremultF(dg, da), unpremultF(db, da)

		blr, blg, blb := blend(csr, csg, csb, cbr, cbg, cbb)
		ra := saf + daf - saf*daf
		combine := func(cs, cb, bl float32) float32 {
			return cs*saf*(1-daf) + cb*daf*(1-saf) + bl*saf*daf
		}
		return toByte(combine(csr, cbr, blr)),
			toByte(combine(csg, cbg, blg)),
			toByte(combine(csb, cbb, blb)),
			toByte(ra)
	}
}

func lum(r, g, b float32) float32 {
	return 0.3*r + 0.59*g + 0.11*b
}

func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min3(r, g, b)
	x := max3(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func sat(r, g, b float32) float32 {
	return max3(r, g, b) - min3(r, g, b)
}

// setSat scales the mid channel between min and max to hit saturation s.
func setSat(r, g, b, s float32) (float32, float32, float32) {
	n := min3(r, g, b)
	x := max3(r, g, b)
	set := func(c float32) float32 {
		if x == n {
			return 0
		}
		return (c - n) * s / (x - n)
	}
	return set(r), set(g), set(b)
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func blendHue(csr, csg, csb, cbr, cbg, cbb float32) (float32, float32, float32) {
	r, g, b := setSat(csr, csg, csb, sat(cbr, cbg, cbb))
	return setLum(r, g, b, lum(cbr, cbg, cbb))
}

func blendSaturation(csr, csg, csb, cbr, cbg, cbb float32) (float32, float32, float32) {
	r, g, b := setSat(cbr, cbg, cbb, sat(csr, csg, csb))
	return setLum(r, g, b, lum(cbr, cbg, cbb))
}

func blendColor(csr, csg, csb, cbr, cbg, cbb float32) (float32, float32, float32) {
	return setLum(csr, csg, csb, lum(cbr, cbg, cbb))
}

func blendLuminosity(csr, csg, csb, cbr, cbg, cbb float32) (float32, float32, float32) {
	return setLum(cbr, cbg, cbb, lum(csr, csg, csb))
}
