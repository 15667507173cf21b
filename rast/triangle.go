package rast

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateGeometry is returned for triangles with zero area in screen space.
var ErrDegenerateGeometry = errors.New("rast: degenerate triangle")

// Triangle is three homogeneous vertices and one flat colour.
//
// Vertex order defines winding. Triangle is a value type: Draw transforms copies and
// never modifies the caller's triangles.
type Triangle struct {
	v     [3]mgl32.Vec4
	color Color
}

// NewTriangle returns a white triangle with the given object-space vertices.
func NewTriangle(a, b, c mgl32.Vec3) Triangle {
	return Triangle{
		v:     [3]mgl32.Vec4{a.Vec4(1), b.Vec4(1), c.Vec4(1)},
		color: White,
	}
}

func (t Triangle) A() mgl32.Vec4 { return t.v[0] }
func (t Triangle) B() mgl32.Vec4 { return t.v[1] }
func (t Triangle) C() mgl32.Vec4 { return t.v[2] }

// Vertices returns a copy of the three vertices.
func (t Triangle) Vertices() [3]mgl32.Vec4 { return t.v }

// SetVertex replaces vertex i with an object-space position. It panics unless i is
// 0, 1 or 2.
func (t *Triangle) SetVertex(i int, p mgl32.Vec3) {
	if i < 0 || i >= len(t.v) {
		panic(fmt.Sprintf("rast: vertex index %d out of range [0, 2]", i))
	}
	t.v[i] = p.Vec4(1)
}

// SetVertices replaces all three homogeneous vertices.
func (t *Triangle) SetVertices(v [3]mgl32.Vec4) { t.v = v }

func (t Triangle) Color() Color       { return t.color }
func (t *Triangle) SetColor(c Color) { t.color = c }

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{A: %v, B: %v, C: %v, color: %v}", t.v[0], t.v[1], t.v[2], t.color)
}

// BBox is an axis-aligned box in screen space.
type BBox struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// BoundingBox returns the x/y extent of the three vertices.
func (t Triangle) BoundingBox() BBox {
	a, b, c := t.v[0], t.v[1], t.v[2]
	return BBox{
		MinX: min(a.X(), b.X(), c.X()),
		MaxX: max(a.X(), b.X(), c.X()),
		MinY: min(a.Y(), b.Y(), c.Y()),
		MaxY: max(a.Y(), b.Y(), c.Y()),
	}
}

// Pixels returns the pixels whose centres can fall inside the box, clipped to a
// w×h buffer. The result is empty for boxes entirely outside the buffer or with NaN
// extents.
func (b BBox) Pixels(w, h int) image.Rectangle {
	if !(b.MinX <= b.MaxX) || !(b.MinY <= b.MaxY) {
		return image.Rectangle{}
	}
	x0 := clampF32(math32.Floor(b.MinX), 0, float32(w))
	x1 := clampF32(math32.Ceil(b.MaxX), 0, float32(w))
	y0 := clampF32(math32.Floor(b.MinY), 0, float32(h))
	y1 := clampF32(math32.Ceil(b.MaxY), 0, float32(h))
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// ContainsPoint reports whether p lies strictly inside the triangle.
//
// The z-component of edge × (p − vertex) is taken for each edge; p is inside when all
// three have the same strict sign. Points on an edge are outside.
func (t Triangle) ContainsPoint(p mgl32.Vec2) bool {
	var pos, neg int
	for i := range 3 {
		a, b := t.v[i], t.v[(i+1)%3]
		edge := mgl32.Vec3{b.X() - a.X(), b.Y() - a.Y(), 0}
		to := mgl32.Vec3{p.X() - a.X(), p.Y() - a.Y(), 0}
		switch z := edge.Cross(to).Z(); {
		case z > 0:
			pos++
		case z < 0:
			neg++
		}
	}
	return pos == 3 || neg == 3
}

// Area returns the unsigned x/y area of the triangle.
func (t Triangle) Area() float32 {
	a, b, c := t.v[0], t.v[1], t.v[2]
	ab := mgl32.Vec3{b.X() - a.X(), b.Y() - a.Y(), 0}
	ac := mgl32.Vec3{c.X() - a.X(), c.Y() - a.Y(), 0}
	return math32.Abs(ab.Cross(ac).Z()) / 2
}

// Barycentric returns the weights of p with respect to the vertices A, B and C.
func (t Triangle) Barycentric(p mgl32.Vec2) (alpha, beta, gamma float32, err error) {
	f, err := t.baryFrame()
	if err != nil {
		return 0, 0, 0, err
	}
	alpha, beta, gamma = f.at(p.X(), p.Y())
	return alpha, beta, gamma, nil
}

// baryFrame holds the inverse of the matrix whose columns are [1, x, y] of each vertex,
// so one triangle's weights can be solved per pixel without refactoring.
type baryFrame struct {
	inv mgl32.Mat3
}

func (t Triangle) baryFrame() (baryFrame, error) {
	if t.Area() == 0 {
		return baryFrame{}, ErrDegenerateGeometry
	}
	a, b, c := t.v[0], t.v[1], t.v[2]
	m := mgl32.Mat3FromCols(
		mgl32.Vec3{1, a.X(), a.Y()},
		mgl32.Vec3{1, b.X(), b.Y()},
		mgl32.Vec3{1, c.X(), c.Y()},
	)
	det := m.Det()
	if det == 0 || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return baryFrame{}, ErrDegenerateGeometry
	}
	return baryFrame{inv: m.Inv()}, nil
}

func (f baryFrame) at(x, y float32) (alpha, beta, gamma float32) {
	w := f.inv.Mul3x1(mgl32.Vec3{1, x, y})
	return w[0], w[1], w[2]
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
