package rast

// Target is a pixel sink a finished frame can be copied into.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
}

// RGB888Target writes 3-byte R, G, B pixels into a caller-provided buffer.
type RGB888Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB888Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB888Target) SetPixel(x, y int, c Color) {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*3
	if off < 0 || off+2 >= len(t.Buf) {
		return
	}
	t.Buf[off] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
}
