package raster

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/surface"
)

// edge is a non-horizontal polygon edge prepared for scanline traversal.
// winding is +1 for edges running downward and -1 for upward.
type edge struct {
	yTop, yBot float32
	xTop       float32
	slope      float32 // dx per unit dy
	winding    int
}

// buildEdges converts polylines into scanline edges. Open subpaths are
// implicitly closed for filling.
func buildEdges(polys []polyline) []edge {
	var edges []edge
	addEdge := func(a, b easel.Point) {
		if a.Y == b.Y {
			return
		}
		w := 1
		if a.Y > b.Y {
			a, b = b, a
			w = -1
		}
		edges = append(edges, edge{
			yTop:    a.Y,
			yBot:    b.Y,
			xTop:    a.X,
			slope:   (b.X - a.X) / (b.Y - a.Y),
			winding: w,
		})
	}

	for _, poly := range polys {
		n := len(poly.pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n-1; i++ {
			addEdge(poly.pts[i], poly.pts[i+1])
		}
		addEdge(poly.pts[n-1], poly.pts[0])
	}
	return edges
}

// crossing is an x intersection of an edge with the current scanline.
type crossing struct {
	x       float32
	winding int
}

// scanSpans walks every pixel row, computes nonzero-winding spans at the
// row center, and invokes emit(y, x0, x1) for each covered pixel run
// (inclusive x0, exclusive x1).
func scanSpans(width, height int, edges []edge, emit func(y, x0, x1 int)) {
	if len(edges) == 0 {
		return
	}
	var crossings []crossing
	for y := 0; y < height; y++ {
		yc := float32(y) + 0.5
		crossings = crossings[:0]
		for _, e := range edges {
			if yc < e.yTop || yc >= e.yBot {
				continue
			}
			crossings = append(crossings, crossing{
				x:       e.xTop + (yc-e.yTop)*e.slope,
				winding: e.winding,
			})
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

		wind := 0
		for i := 0; i < len(crossings)-1; i++ {
			wind += crossings[i].winding
			if wind == 0 {
				continue
			}
			xa, xb := crossings[i].x, crossings[i+1].x
			// Pixels whose centers fall inside [xa, xb): a center exactly
			// on the left boundary is covered, one on the right is not.
			x0 := int(math32.Ceil(xa - 0.5))
			x1 := int(math32.Ceil(xb - 0.5))
			if x0 < 0 {
				x0 = 0
			}
			if x1 > width {
				x1 = width
			}
			if x0 < x1 {
				emit(y, x0, x1)
			}
		}
	}
}

// fillPolylines rasterizes polylines with the nonzero winding rule,
// shading each covered pixel through sh and compositing source-over into
// dst, modulated by the clip mask.
func fillPolylines(dst *surface.Pixmap, polys []polyline, clip *surface.ClipMask, sh shader) {
	edges := buildEdges(polys)
	data := dst.Data()
	width := dst.Width()
	scanSpans(width, dst.Height(), edges, func(y, x0, x1 int) {
		row := y * width
		for x := x0; x < x1; x++ {
			cov := clip.At(x, y)
			if cov == 0 {
				continue
			}
			blendPixel(data, row+x, sh.at(float32(x)+0.5, float32(y)+0.5), cov)
		}
	})
}

// rasterizeMask marks the nonzero interior of polys in an 8-bit mask.
// Coverage accumulates with max, so repeated calls union regions.
func rasterizeMask(mask []uint8, width, height int, polys []polyline) {
	edges := buildEdges(polys)
	scanSpans(width, height, edges, func(y, x0, x1 int) {
		row := y * width
		for x := x0; x < x1; x++ {
			mask[row+x] = 255
		}
	})
}

// shadeMask blends the shader through a coverage mask, honoring clip.
// Each pixel is blended exactly once regardless of how many stroke
// polygons overlapped it.
func shadeMask(dst *surface.Pixmap, mask []uint8, clip *surface.ClipMask, sh shader) {
	data := dst.Data()
	width := dst.Width()
	for y := 0; y < dst.Height(); y++ {
		row := y * width
		for x := 0; x < width; x++ {
			m := mask[row+x]
			if m == 0 {
				continue
			}
			cov := clip.At(x, y)
			if cov == 0 {
				continue
			}
			if cov > m {
				cov = m
			}
			blendPixel(data, row+x, sh.at(float32(x)+0.5, float32(y)+0.5), cov)
		}
	}
}

// blendPixel composites a premultiplied source color source-over into
// data[i], scaled by coverage.
func blendPixel(data []uint32, i int, src premultRGBA, coverage uint8) {
	sa, sr, sg, sb := src.a, src.r, src.g, src.b
	if coverage < 255 {
		sa = mulDiv255(sa, coverage)
		sr = mulDiv255(sr, coverage)
		sg = mulDiv255(sg, coverage)
		sb = mulDiv255(sb, coverage)
	}
	if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
		return
	}
	da, dr, dg, db := surface.UnpackARGB(data[i])
	nr, ng, nb, na := blendSrcOver(sr, sg, sb, sa, dr, dg, db, da)
	data[i] = surface.PackARGB(na, nr, ng, nb)
}
