package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte

	// front is the last presented frame as RGBA; the window draws from it.
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, width*height*4),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present copies the back buffer into the RGBA front buffer.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		expandRGBA(f.front[y*f.width*4:], f.buf[y*f.stride:], f.format, f.width)
	}
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.format {
	case PixelFormatRGB565:
		pixel := rgb565(r, g, b)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(f.buf); i += 2 {
			f.buf[i] = lo
			f.buf[i+1] = hi
		}
	case PixelFormatRGB888:
		for i := 0; i+2 < len(f.buf); i += 3 {
			f.buf[i] = r
			f.buf[i+1] = g
			f.buf[i+2] = b
		}
	}
}

// snapshotRGBA copies the front buffer into dst and returns the present count, so
// callers can skip uploads when nothing new was presented.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.presents
}
