package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"softrast/rast"
)

const (
	hudMargin     = 4
	hudLineHeight = 10
	hudBaseline   = 8
)

var (
	hudBackground = color.RGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF}
	hudForeground = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
)

// hud draws status text over the top-left corner of the frame.
type hud struct {
	d      *fbDisplay
	font   tinyfont.Fonter
	hidden bool
}

func newHUD(t rast.Target) *hud {
	return &hud{d: &fbDisplay{t: t}, font: &proggy.TinySZ8pt7b}
}

func (h *hud) draw(lines []string) {
	if h.hidden || len(lines) == 0 {
		return
	}
	var width uint32
	for _, s := range lines {
		if _, w := tinyfont.LineWidth(h.font, s); w > width {
			width = w
		}
	}
	_ = h.d.FillRectangle(0, 0, int16(width)+2*hudMargin, int16(len(lines)*hudLineHeight+hudMargin), hudBackground)
	for i, s := range lines {
		y := int16(hudMargin + i*hudLineHeight + hudBaseline)
		tinyfont.WriteLine(h.d, h.font, hudMargin, y, s, hudForeground)
	}
}

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts a rasterizer target to the tinygo display interface.
type fbDisplay struct {
	t rast.Target
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), rast.RGB(c.R, c.G, c.B))
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.t == nil {
		return nil
	}
	w, h := d.t.Size()
	x0, y0 := clampInt(int(x), 0, w), clampInt(int(y), 0, h)
	x1, y1 := clampInt(int(x)+int(width), 0, w), clampInt(int(y)+int(height), 0, h)
	p := rast.RGB(c.R, c.G, c.B)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.t.SetPixel(px, py, p)
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
