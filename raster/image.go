package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/easel/surface"
)

// DrawImage implements surface.Rasterizer. The source is composited
// source-over at device position (x, y). When resample is set the source
// is first scaled to (w, h) with the renderer's Scaler; otherwise pixels
// are copied one-to-one.
func (r *Renderer) DrawImage(dst *surface.Pixmap, clip *surface.ClipMask, src *surface.Pixmap, x, y, w, h float32, resample bool) {
	ox := int(floorHalf(x))
	oy := int(floorHalf(y))

	if !resample {
		blitPixmap(dst, clip, src, ox, oy)
		return
	}

	tw := int(w + 0.5)
	th := int(h + 0.5)
	if tw <= 0 || th <= 0 {
		return
	}
	if tw == src.Width() && th == src.Height() {
		blitPixmap(dst, clip, src, ox, oy)
		return
	}

	srcImg := toRGBA(src)
	scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
	r.Scaler.Scale(scaled, scaled.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	blitPixmap(dst, clip, fromRGBA(scaled), ox, oy)
}

// floorHalf rounds to the nearest integer, halves up.
func floorHalf(v float32) float32 {
	if v >= 0 {
		return float32(int(v + 0.5))
	}
	return -float32(int(-v + 0.5))
}

// blitPixmap composites src source-over onto dst at (ox, oy), modulated by
// the clip mask.
func blitPixmap(dst *surface.Pixmap, clip *surface.ClipMask, src *surface.Pixmap, ox, oy int) {
	dd := dst.Data()
	sd := src.Data()
	for sy := 0; sy < src.Height(); sy++ {
		dy := oy + sy
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		srow := sy * src.Width()
		drow := dy * dst.Width()
		for sx := 0; sx < src.Width(); sx++ {
			dx := ox + sx
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			cov := clip.At(dx, dy)
			if cov == 0 {
				continue
			}
			sa, sr, sg, sb := surface.UnpackARGB(sd[srow+sx])
			blendPixel(dd, drow+dx, premultRGBA{a: sa, r: sr, g: sg, b: sb}, cov)
		}
	}
}

// toRGBA views a pixmap as a premultiplied image.RGBA.
func toRGBA(p *surface.Pixmap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	data := p.Data()
	for i, v := range data {
		a, r, g, b := surface.UnpackARGB(v)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}
	return img
}

// fromRGBA packs a premultiplied image.RGBA back into a pixmap.
func fromRGBA(img *image.RGBA) *surface.Pixmap {
	b := img.Bounds()
	p := surface.NewPixmap(b.Dx(), b.Dy())
	data := p.Data()
	for i := range data {
		o := i * 4
		data[i] = surface.PackARGB(img.Pix[o+3], img.Pix[o], img.Pix[o+1], img.Pix[o+2])
	}
	return p
}
