package rast

// RGB565Target writes little-endian RGB565 pixels into a caller-provided buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}
