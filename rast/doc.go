// Package rast provides a minimal, predictable software triangle rasterizer.
//
// Pipeline (fixed):
//
//	Object space → MVP → Perspective divide → Viewport → Scan conversion → Depth test.
//
// The Rasterizer owns a colour buffer and a depth buffer. Callers set the model, view and
// projection matrices (see View, Model and Projection), then call Draw with an ordered list
// of flat-coloured triangles. The resulting image is read back with Bytes, Image or Blit.
//
// Conventions:
//
// Pixel (x, y) is column x, row y with the origin at the top-left corner; the buffer offset
// is y*width + x. The viewport remap flips y so that +y in NDC points up on screen. Depth
// values are remapped into [near, far]; smaller is nearer and +Inf means no triangle has
// claimed the pixel.
//
// The package performs no I/O and does not log.
package rast
