// Package easel provides a stateful 2D vector-graphics surface manager.
//
// # Overview
//
// easel exposes a table of independently addressable drawing surfaces to a
// host application. Callers assign each surface a 32-bit identifier, send
// structured drawing commands against it (paths, fills, strokes, images,
// clips, layers, transforms), and read back the composited pixels.
//
// The root package defines the serializable drawing data model: paths,
// paints (solid and gradient), stroke styles, blend modes, and affine
// transforms. It carries no drawing state of its own.
//
// # Quick Start
//
//	reg := surface.NewRegistry(raster.New())
//	disp := command.NewDispatcher(reg)
//
//	disp.Dispatch("create_surface", []byte("1"), []byte("256"), []byte("256"))
//	disp.Dispatch("clear", []byte("1"), []byte("255"), []byte("255"), []byte("255"), []byte("255"))
//	disp.Dispatch("fill", []byte("1"), pathJSON, paintJSON)
//	res := disp.Dispatch("encode_png", []byte("1"))
//
// # Architecture
//
// The module is organized into:
//   - easel (root): the drawing data model (Path, Paint, StrokeStyle, Matrix, BlendMode)
//   - surface: per-surface state (pixels, transform, clip and layer stacks) and the id registry
//   - command: boundary decoding of untyped payloads and operation dispatch
//   - raster: the reference CPU rasterizer (scanline fill, stroke expansion, compositing)
//   - imageio: image bytes to pixel buffers and back
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Angles are in radians unless an API explicitly says degrees.
package easel

// Version is the current version of the library.
const Version = "0.2.0"
