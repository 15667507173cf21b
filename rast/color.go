package rast

import "fmt"

// Color is a flat triangle colour in 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB returns a Color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black = Color{}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
)

// RGBA implements color.Color. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// RGB565 packs the colour as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }
