// Package imageio converts between encoded image bytes and pixmaps.
//
// Decode understands PNG, JPEG, GIF, BMP, TIFF, and WebP. Encoding always
// produces PNG, matching what the surface export operations promise.
package imageio
