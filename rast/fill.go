package rast

import "github.com/go-gl/mathgl/mgl32"

// fill scan-converts a screen-space triangle and returns the number of pixels written.
// Pixels are sampled at their centres.
func (r *Rasterizer) fill(t Triangle) (int, error) {
	f, err := t.baryFrame()
	if err != nil {
		return 0, err
	}
	a, b, c := t.v[0], t.v[1], t.v[2]
	col := t.color

	var n int
	px := t.BoundingBox().Pixels(r.width, r.height)
	for y := px.Min.Y; y < px.Max.Y; y++ {
		for x := px.Min.X; x < px.Max.X; x++ {
			sx, sy := float32(x)+0.5, float32(y)+0.5
			if !t.ContainsPoint(mgl32.Vec2{sx, sy}) {
				continue
			}
			alpha, beta, gamma := f.at(sx, sy)
			z := (alpha*a.Z()/a.W() + beta*b.Z()/b.W() + gamma*c.Z()/c.W()) /
				(alpha/a.W() + beta/b.W() + gamma/c.W())
			if !r.depthTest(x, y, z) {
				continue
			}
			r.setPixel(x, y, col)
			n++
		}
	}
	return n, nil
}

// depthTest stores z and reports true only when z is strictly nearer than the current
// value at (x, y).
func (r *Rasterizer) depthTest(x, y int, z float32) bool {
	i, ok := r.offset(x, y)
	if !ok {
		return false
	}
	if !(z < r.depth[i]) {
		return false
	}
	r.depth[i] = z
	return true
}
