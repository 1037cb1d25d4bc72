// Package raster is the reference CPU implementation of the
// surface.Rasterizer interface.
//
// It scan-converts flattened paths with the nonzero winding rule, expands
// strokes into filled outlines (tiny-skia style: offset quads plus cap and
// join polygons rendered through a coverage mask so overlaps blend once),
// shades solid and gradient paints, and composites layers and images with
// the full Porter-Duff and W3C blend mode set on premultiplied ARGB pixels.
//
// The renderer is optimized for correctness and determinism over speed.
package raster
