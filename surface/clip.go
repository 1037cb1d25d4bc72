package surface

// ClipMask is an 8-bit coverage mask over the surface. 255 means fully
// drawable, 0 means fully clipped. A nil *ClipMask means no clipping.
//
// Masks are immutable once built; pushing a clip produces a new mask that
// is the intersection of the incoming region with the previous top of the
// stack, so popping simply reveals the prior mask.
type ClipMask struct {
	width  int
	height int
	alpha  []uint8
}

// NewClipMask creates a mask with the given coverage values.
// The alpha length must be width*height.
func NewClipMask(width, height int, alpha []uint8) *ClipMask {
	return &ClipMask{width: width, height: height, alpha: alpha}
}

// RectMask builds a mask that is fully drawable inside the integer device
// rectangle spanned by the corners (x1, y1) and (x2, y2) and clipped
// outside it.
func RectMask(width, height, x1, y1, x2, y2 int) *ClipMask {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	m := &ClipMask{width: width, height: height, alpha: make([]uint8, width*height)}
	for y := max(y1, 0); y < min(y2, height); y++ {
		row := y * width
		for x := max(x1, 0); x < min(x2, width); x++ {
			m.alpha[row+x] = 255
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *ClipMask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *ClipMask) Height() int { return m.height }

// At returns the coverage at (x, y). Outside the mask bounds the coverage
// is 0. A nil mask reports full coverage everywhere.
func (m *ClipMask) At(x, y int) uint8 {
	if m == nil {
		return 255
	}
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.alpha[y*m.width+x]
}

// Intersect returns the per-pixel minimum of two masks.
// Either argument may be nil, meaning no clipping on that side.
func (m *ClipMask) Intersect(other *ClipMask) *ClipMask {
	if m == nil {
		return other
	}
	if other == nil {
		return m
	}
	out := &ClipMask{width: m.width, height: m.height, alpha: make([]uint8, len(m.alpha))}
	for i, a := range m.alpha {
		b := other.alpha[i]
		if b < a {
			out.alpha[i] = b
		} else {
			out.alpha[i] = a
		}
	}
	return out
}
