package rast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRGB565(t *testing.T) {
	assert.Equal(t, uint16(0xF800), red.RGB565())
	assert.Equal(t, uint16(0x07E0), green.RGB565())
	assert.Equal(t, uint16(0x001F), blue.RGB565())
	assert.Equal(t, uint16(0xFFFF), White.RGB565())
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(0xFF, 0x80, 0).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0x8080, 0, 0xFFFF}, []uint32{r, g, b, a})
}

func TestBlitRGB888(t *testing.T) {
	r := New(3, 2)
	r.setPixel(2, 1, RGB(1, 2, 3))

	// Padded rows.
	dst := &RGB888Target{Buf: make([]byte, 2*12), Stride: 12, W: 3, H: 2}
	r.Blit(dst)
	assert.Equal(t, []byte{1, 2, 3}, dst.Buf[12+6:12+9])
	assert.Equal(t, make([]byte, 12), dst.Buf[:12])
}

func TestBlitRGB565(t *testing.T) {
	r := New(4, 4)
	r.setPixel(0, 0, red)
	r.setPixel(3, 3, blue)

	// Smaller target: the frame is clipped.
	dst := &RGB565Target{Buf: make([]byte, 2*2*2), Stride: 4, W: 2, H: 2}
	r.Blit(dst)
	assert.Equal(t, []byte{0x00, 0xF8}, dst.Buf[0:2])
	assert.Equal(t, make([]byte, 6), dst.Buf[2:])

	assert.NotPanics(t, func() { r.Blit(nil) })
}
