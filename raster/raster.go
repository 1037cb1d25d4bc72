package raster

import (
	"golang.org/x/image/draw"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

// Renderer is a software rasterizer. The zero value is not usable; create
// one with New.
type Renderer struct {
	// Scaler resamples images for DrawImage when a target size is given.
	Scaler draw.Scaler
}

// New creates a software renderer with bilinear image resampling.
func New() *Renderer {
	return &Renderer{Scaler: draw.ApproxBiLinear}
}

// Fill implements surface.Rasterizer.
func (r *Renderer) Fill(dst *surface.Pixmap, tr easel.Matrix, clip *surface.ClipMask, path *easel.Path, paint easel.Paint) {
	polys := transformPolylines(flatten(path), tr)
	fillPolylines(dst, polys, clip, newShader(paint, tr))
}

// FillRect implements surface.Rasterizer. The rectangle goes through the
// transform and clip like any other fill.
func (r *Renderer) FillRect(dst *surface.Pixmap, tr easel.Matrix, clip *surface.ClipMask, x, y, w, h float32, paint easel.Paint) {
	path := easel.BuildPath().RectTo(x, y, w, h).Build()
	r.Fill(dst, tr, clip, path, paint)
}

// Stroke implements surface.Rasterizer. The stroke outline is built in
// user space so the width follows the transform, then rasterized into a
// coverage mask and shaded in one blend pass.
func (r *Renderer) Stroke(dst *surface.Pixmap, tr easel.Matrix, clip *surface.ClipMask, path *easel.Path, paint easel.Paint, style easel.StrokeStyle) {
	if style.Width <= 0 {
		return
	}
	outline := expandStroke(flatten(path), style)
	outline = transformPolylines(outline, tr)

	mask := make([]uint8, dst.Width()*dst.Height())
	for _, poly := range outline {
		rasterizeMask(mask, dst.Width(), dst.Height(), []polyline{poly})
	}
	shadeMask(dst, mask, clip, newShader(paint, tr))
}

// PathMask implements surface.Rasterizer.
func (r *Renderer) PathMask(width, height int, tr easel.Matrix, path *easel.Path) *surface.ClipMask {
	polys := transformPolylines(flatten(path), tr)
	mask := make([]uint8, width*height)
	rasterizeMask(mask, width, height, polys)
	return surface.NewClipMask(width, height, mask)
}

// Composite implements surface.Rasterizer. src is scaled by the group
// opacity and blended pixel-by-pixel onto dst.
func (r *Renderer) Composite(dst, src *surface.Pixmap, opacity float32, mode easel.BlendMode) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	scale := uint16(opacity*255 + 0.5)
	blend := blendFunc(mode)

	dd := dst.Data()
	sd := src.Data()
	for i := range dd {
		sa, sr, sg, sb := surface.UnpackARGB(sd[i])
		if scale < 255 {
			sa = uint8((uint16(sa)*scale + 127) / 255)
			sr = uint8((uint16(sr)*scale + 127) / 255)
			sg = uint8((uint16(sg)*scale + 127) / 255)
			sb = uint8((uint16(sb)*scale + 127) / 255)
		}
		da, dr, dg, db := surface.UnpackARGB(dd[i])
		nr, ng, nb, na := blend(sr, sg, sb, sa, dr, dg, db, da)
		dd[i] = surface.PackARGB(na, nr, ng, nb)
	}
}
