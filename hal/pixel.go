package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// expandRGBA converts one row of packed pixels in src to RGBA in dst.
func expandRGBA(dst, src []byte, format PixelFormat, width int) {
	switch format {
	case PixelFormatRGB565:
		for x := 0; x < width; x++ {
			r, g, b := rgb888From565(uint16(src[2*x]) | uint16(src[2*x+1])<<8)
			dst[4*x+0] = r
			dst[4*x+1] = g
			dst[4*x+2] = b
			dst[4*x+3] = 0xFF
		}
	case PixelFormatRGB888:
		for x := 0; x < width; x++ {
			dst[4*x+0] = src[3*x+0]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xFF
		}
	}
}
