package rast

import (
	"image"

	"github.com/chewxy/math32"
)

// wireframe draws the three edges of a screen-space triangle.
func (r *Rasterizer) wireframe(t Triangle) int {
	var n int
	for i := range 3 {
		a, b := t.v[i], t.v[(i+1)%3]
		p0, p1, ok := r.clipLine(a.X(), a.Y(), b.X(), b.Y())
		if !ok {
			continue
		}
		n += r.drawLine(p0, p1, t.color)
	}
	return n
}

// clipLine clips a segment to the buffer (Liang–Barsky) and rounds it to pixels.
func (r *Rasterizer) clipLine(x0, y0, x1, y1 float32) (p0, p1 image.Point, ok bool) {
	xmin, ymin := float32(0), float32(0)
	xmax, ymax := float32(r.width-1), float32(r.height-1)
	dx, dy := x1-x0, y1-y0

	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		u := q / p
		if p < 0 {
			if u > t1 {
				return p0, p1, false
			}
			t0 = max(t0, u)
		} else {
			if u < t0 {
				return p0, p1, false
			}
			t1 = min(t1, u)
		}
	}
	// Clamp again: with huge inputs x0+t*dx loses precision and can land far outside.
	cx0, cy0 := clampF32(x0+t0*dx, xmin, xmax), clampF32(y0+t0*dy, ymin, ymax)
	cx1, cy1 := clampF32(x0+t1*dx, xmin, xmax), clampF32(y0+t1*dy, ymin, ymax)
	for _, v := range [4]float32{cx0, cy0, cx1, cy1} {
		if math32.IsNaN(v) {
			return p0, p1, false
		}
	}
	p0 = image.Pt(int(math32.Round(cx0)), int(math32.Round(cy0)))
	p1 = image.Pt(int(math32.Round(cx1)), int(math32.Round(cy1)))
	return p0, p1, true
}

// drawLine draws an inclusive Bresenham line and returns the number of pixels written.
func (r *Rasterizer) drawLine(p0, p1 image.Point, c Color) int {
	if absInt(p1.Y-p0.Y) < absInt(p1.X-p0.X) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		return r.lineLow(p0, p1, c)
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return r.lineHigh(p0, p1, c)
}

// lineLow steps along +x for slopes in [-1, 1].
func (r *Rasterizer) lineLow(p0, p1 image.Point, c Color) int {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	yi := 1
	if dy < 0 {
		yi, dy = -1, -dy
	}
	d := 2*dy - dx
	y := p0.Y

	var n int
	for x := p0.X; x <= p1.X; x++ {
		if r.setPixel(x, y, c) {
			n++
		}
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
	return n
}

// lineHigh steps along +y for steep slopes.
func (r *Rasterizer) lineHigh(p0, p1 image.Point, c Color) int {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	xi := 1
	if dx < 0 {
		xi, dx = -1, -dx
	}
	d := 2*dx - dy
	x := p0.X

	var n int
	for y := p0.Y; y <= p1.Y; y++ {
		if r.setPixel(x, y, c) {
			n++
		}
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
	return n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
