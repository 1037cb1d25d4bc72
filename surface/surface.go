package surface

import (
	"github.com/gogpu/easel"
)

// Rasterizer is the scan-conversion engine consumed by Surface operations.
// The surface layer hands it typed primitives and a destination buffer; all
// anti-aliasing, gradient interpolation, and pixel blending policy lives
// behind this interface. Implementations are assumed total for well-formed
// inputs.
type Rasterizer interface {
	// Fill rasterizes the path interior (nonzero winding) with the paint,
	// honoring the transform and clip mask.
	Fill(dst *Pixmap, tr easel.Matrix, clip *ClipMask, path *easel.Path, paint easel.Paint)

	// Stroke rasterizes the stroked outline of the path.
	Stroke(dst *Pixmap, tr easel.Matrix, clip *ClipMask, path *easel.Path, paint easel.Paint, style easel.StrokeStyle)

	// FillRect fills an axis-aligned rectangle through transform and clip.
	FillRect(dst *Pixmap, tr easel.Matrix, clip *ClipMask, x, y, w, h float32, paint easel.Paint)

	// DrawImage composites src at (x, y), resampled to w x h when resample
	// is set, honoring the clip mask.
	DrawImage(dst *Pixmap, clip *ClipMask, src *Pixmap, x, y, w, h float32, resample bool)

	// PathMask scan-converts a path into a coverage mask of the given size.
	PathMask(width, height int, tr easel.Matrix, path *easel.Path) *ClipMask

	// Composite blends src onto dst with a group opacity and blend mode.
	// Used to flatten layers at pop.
	Composite(dst, src *Pixmap, opacity float32, mode easel.BlendMode)
}

// layer is an isolated compositing group. Draws issued while the layer is
// on the stack accumulate into its pixmap; the group is flattened onto its
// parent with the recorded opacity and blend mode at pop.
type layer struct {
	pixmap  *Pixmap
	opacity float32
	blend   easel.BlendMode
}

// Surface is one addressable drawing target: a pixel buffer plus transform,
// clip stack, and layer stack. Surfaces are not safe for concurrent use;
// the Registry serializes access.
type Surface struct {
	width  int
	height int
	base   *Pixmap

	transform easel.Matrix
	clips     []*ClipMask
	layers    []*layer

	ras Rasterizer
}

// newSurface allocates a surface with a zeroed pixel buffer and identity
// transform. Dimensions are validated by the Registry.
func newSurface(width, height int, ras Rasterizer) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		base:      NewPixmap(width, height),
		transform: easel.Identity(),
		ras:       ras,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Pixmap returns the base pixel buffer.
func (s *Surface) Pixmap() *Pixmap { return s.base }

// Transform returns the current transform.
func (s *Surface) Transform() easel.Matrix { return s.transform }

// ClipDepth returns the number of pushed clips.
func (s *Surface) ClipDepth() int { return len(s.clips) }

// LayerDepth returns the number of pushed layers.
func (s *Surface) LayerDepth() int { return len(s.layers) }

// target returns the pixmap draws currently land on: the top layer if any
// layers are pushed, otherwise the base buffer.
func (s *Surface) target() *Pixmap {
	if n := len(s.layers); n > 0 {
		return s.layers[n-1].pixmap
	}
	return s.base
}

// clip returns the effective clip mask, or nil when nothing is clipped.
func (s *Surface) clip() *ClipMask {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return nil
}

// SetTransform replaces the current transform. It does not compose with
// the previous one.
func (s *Surface) SetTransform(m easel.Matrix) {
	s.transform = m
}

// Clear overwrites every pixel of the current draw target with the color,
// bypassing transform and clip state.
func (s *Surface) Clear(c easel.Color) {
	s.target().Clear(c)
}

// FillRect fills an axis-aligned rectangle with the paint, honoring the
// current transform and clip.
func (s *Surface) FillRect(x, y, w, h float32, paint easel.Paint) {
	s.ras.FillRect(s.target(), s.transform, s.clip(), x, y, w, h, paint)
}

// Fill rasterizes the path interior with the paint.
func (s *Surface) Fill(path *easel.Path, paint easel.Paint) {
	s.ras.Fill(s.target(), s.transform, s.clip(), path, paint)
}

// Stroke rasterizes the stroked outline of the path.
func (s *Surface) Stroke(path *easel.Path, paint easel.Paint, style easel.StrokeStyle) {
	s.ras.Stroke(s.target(), s.transform, s.clip(), path, paint, style)
}

// DrawImageAt composites an image at (x, y) in device coordinates at its
// natural size.
func (s *Surface) DrawImageAt(x, y float32, img *Pixmap) {
	s.ras.DrawImage(s.target(), s.clip(), img, x, y, float32(img.Width()), float32(img.Height()), false)
}

// DrawImageWithSizeAt composites an image at (x, y), resampled to w x h.
func (s *Surface) DrawImageWithSizeAt(x, y, w, h float32, img *Pixmap) {
	s.ras.DrawImage(s.target(), s.clip(), img, x, y, w, h, true)
}

// PushClipRect intersects the clip stack with the integer device rectangle
// spanned by (x1, y1) and (x2, y2). The rectangle is not transformed.
func (s *Surface) PushClipRect(x1, y1, x2, y2 int) {
	m := RectMask(s.width, s.height, x1, y1, x2, y2)
	s.clips = append(s.clips, m.Intersect(s.clip()))
}

// PushClip intersects the clip stack with the interior of a path, scan
// converted under the current transform.
func (s *Surface) PushClip(path *easel.Path) {
	m := s.ras.PathMask(s.width, s.height, s.transform, path)
	s.clips = append(s.clips, m.Intersect(s.clip()))
}

// PopClip removes the most recently pushed clip.
// Returns ErrClipStackEmpty if nothing is pushed.
func (s *Surface) PopClip() error {
	if len(s.clips) == 0 {
		return ErrClipStackEmpty
	}
	s.clips = s.clips[:len(s.clips)-1]
	return nil
}

// PushLayer begins an isolated compositing group with the given opacity
// and default source-over blending. Opacity is clamped to [0, 1].
func (s *Surface) PushLayer(opacity float32) {
	s.PushLayerWithBlend(opacity, easel.BlendSrcOver)
}

// PushLayerWithBlend begins an isolated compositing group with an explicit
// blend mode. Subsequent draws accumulate into the group until the
// matching PopLayer.
func (s *Surface) PushLayerWithBlend(opacity float32, mode easel.BlendMode) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	s.layers = append(s.layers, &layer{
		pixmap:  NewPixmap(s.width, s.height),
		opacity: opacity,
		blend:   mode,
	})
}

// PopLayer composites the top layer onto its parent using the opacity and
// blend mode recorded at push. Returns ErrLayerStackEmpty if no layer is
// pushed. The clip stack is unaffected.
func (s *Surface) PopLayer() error {
	n := len(s.layers)
	if n == 0 {
		return ErrLayerStackEmpty
	}
	top := s.layers[n-1]
	s.layers = s.layers[:n-1]
	s.ras.Composite(s.target(), top.pixmap, top.opacity, top.blend)
	return nil
}
