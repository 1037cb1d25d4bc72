// Package surface owns the lifecycle and drawing state of easel surfaces.
//
// A Surface is a pixel buffer plus its mutable drawing state: the current
// affine transform, a clip stack, and a layer stack. Surfaces are owned
// exclusively by a Registry entry keyed by a caller-assigned 32-bit id and
// are destroyed explicitly, never implicitly.
//
// Scan conversion and pixel blending are delegated to a Rasterizer, which
// this package consumes purely by interface.
package surface
