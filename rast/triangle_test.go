package rast

import (
	"fmt"
	"image"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenTri(ax, ay, bx, by, cx, cy float32) Triangle {
	return NewTriangle(mgl32.Vec3{ax, ay, 0}, mgl32.Vec3{bx, by, 0}, mgl32.Vec3{cx, cy, 0})
}

func TestNewTriangle(t *testing.T) {
	tri := NewTriangle(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{7, 8, 9})
	assert.Equal(t, White, tri.Color())
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, tri.A())
	assert.Equal(t, mgl32.Vec4{4, 5, 6, 1}, tri.B())
	assert.Equal(t, mgl32.Vec4{7, 8, 9, 1}, tri.C())
}

func TestTriangleValueSemantics(t *testing.T) {
	orig := NewTriangle(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	cp := orig
	cp.SetVertex(0, mgl32.Vec3{9, 9, 9})
	cp.SetColor(RGB(1, 2, 3))

	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, orig.A())
	assert.Equal(t, White, orig.Color())
	assert.Equal(t, mgl32.Vec4{9, 9, 9, 1}, cp.A())
	assert.Equal(t, RGB(1, 2, 3), cp.Color())
}

func TestSetVertexIndexRange(t *testing.T) {
	tri := NewTriangle(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	tri.SetVertex(2, mgl32.Vec3{5, 5, 5})
	assert.Equal(t, mgl32.Vec4{5, 5, 5, 1}, tri.C())

	for _, i := range []int{-1, 3} {
		assert.PanicsWithValue(t, fmt.Sprintf("rast: vertex index %d out of range [0, 2]", i), func() {
			tri.SetVertex(i, mgl32.Vec3{})
		})
	}
}

func TestBoundingBox(t *testing.T) {
	got := screenTri(1, 5, 4, 2, 3, 8).BoundingBox()
	assert.Equal(t, BBox{MinX: 1, MaxX: 4, MinY: 2, MaxY: 8}, got)
}

func TestBBoxPixels(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want image.Rectangle
	}{
		{"inside", BBox{MinX: 1.5, MaxX: 4.2, MinY: 2, MaxY: 3}, image.Rect(1, 2, 5, 3)},
		{"clamped", BBox{MinX: -10, MaxX: 1000, MinY: -5, MaxY: 3.2}, image.Rect(0, 0, 100, 4)},
		{"outside", BBox{MinX: 200, MaxX: 300, MinY: 10, MaxY: 20}, image.Rectangle{}},
		{"nan", BBox{MinX: math32.NaN(), MaxX: 3, MinY: 0, MaxY: 3}, image.Rectangle{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.box.Pixels(100, 50)
			if tc.want.Empty() {
				assert.True(t, got.Empty(), "Pixels() = %v, want empty", got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestContainsPoint(t *testing.T) {
	ccw := screenTri(0, 0, 10, 0, 0, 10)
	cw := screenTri(0, 0, 0, 10, 10, 0)

	tests := []struct {
		name string
		p    mgl32.Vec2
		want bool
	}{
		{"inside", mgl32.Vec2{2, 2}, true},
		{"outside", mgl32.Vec2{6, 6}, false},
		{"far outside", mgl32.Vec2{-3, 4}, false},
		{"on edge", mgl32.Vec2{5, 0}, false},
		{"on hypotenuse", mgl32.Vec2{5, 5}, false},
		{"on vertex", mgl32.Vec2{0, 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ccw.ContainsPoint(tc.p), "ccw")
			assert.Equal(t, tc.want, cw.ContainsPoint(tc.p), "cw")
		})
	}
}

func TestBarycentricVertices(t *testing.T) {
	tri := screenTri(0, 0, 10, 0, 0, 10)
	for i, want := range [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		v := tri.Vertices()[i]
		a, b, g, err := tri.Barycentric(mgl32.Vec2{v.X(), v.Y()})
		require.NoError(t, err)
		assert.InDelta(t, want[0], a, tol)
		assert.InDelta(t, want[1], b, tol)
		assert.InDelta(t, want[2], g, tol)
	}
}

func TestBarycentricKnownPoint(t *testing.T) {
	a, b, g, err := screenTri(0, 0, 10, 0, 0, 10).Barycentric(mgl32.Vec2{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a, tol)
	assert.InDelta(t, 0.2, b, tol)
	assert.InDelta(t, 0.3, g, tol)
}

func TestBarycentricInsideSumsToOne(t *testing.T) {
	tris := []Triangle{
		screenTri(0, 0, 10, 0, 0, 10),
		screenTri(108.6, 350, 350, 108.6, 591.4, 350),
		screenTri(-3, 7, 12, -1, 4, 20),
	}
	for _, tri := range tris {
		a, b, c := tri.A(), tri.B(), tri.C()
		for i := 1; i < 10; i++ {
			for j := 1; i+j < 10; j++ {
				wa, wb := float32(i)/10, float32(j)/10
				wc := 1 - wa - wb
				p := mgl32.Vec2{
					wa*a.X() + wb*b.X() + wc*c.X(),
					wa*a.Y() + wb*b.Y() + wc*c.Y(),
				}
				require.True(t, tri.ContainsPoint(p), "ContainsPoint(%v)", p)

				alpha, beta, gamma, err := tri.Barycentric(p)
				require.NoError(t, err)
				assert.InDelta(t, 1, alpha+beta+gamma, 1e-4, "sum at %v", p)
				assert.InDelta(t, wa, alpha, 1e-3)
				assert.InDelta(t, wb, beta, 1e-3)
				for _, w := range []float32{alpha, beta, gamma} {
					assert.Greater(t, w, float32(0), "weight at %v", p)
					assert.Less(t, w, float32(1), "weight at %v", p)
				}
			}
		}
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	tests := []Triangle{
		screenTri(0, 0, 1, 1, 2, 2),
		screenTri(3, 3, 3, 3, 3, 3),
	}
	for _, tri := range tests {
		_, _, _, err := tri.Barycentric(mgl32.Vec2{1, 1})
		assert.ErrorIs(t, err, ErrDegenerateGeometry)
	}
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 50, screenTri(0, 0, 10, 0, 0, 10).Area(), tol)
	assert.InDelta(t, 50, screenTri(0, 0, 0, 10, 10, 0).Area(), tol)
	assert.Zero(t, screenTri(0, 0, 1, 1, 2, 2).Area())
}
