package rast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// View returns the camera matrix for an axis-aligned eye: the identity with the eye
// position subtracted in the translation column.
func View(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4FromRows(
		mgl32.Vec4{1, 0, 0, -eye.X()},
		mgl32.Vec4{0, 1, 0, -eye.Y()},
		mgl32.Vec4{0, 0, 1, -eye.Z()},
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// Model returns the rotation of angleDeg degrees about axis (Rodrigues' formula)
// as a homogeneous transform with zero translation.
//
// The axis is used as given. Rodrigues' formula only yields a pure rotation for a
// unit-length axis; callers that accept arbitrary input should normalize first.
func Model(axis mgl32.Vec3, angleDeg float32) mgl32.Mat4 {
	theta := mgl32.DegToRad(angleDeg)
	cos, sin := math32.Cos(theta), math32.Sin(theta)
	x, y, z := axis.X(), axis.Y(), axis.Z()

	outer := mgl32.Mat3FromRows(
		mgl32.Vec3{x * x, x * y, x * z},
		mgl32.Vec3{y * x, y * y, y * z},
		mgl32.Vec3{z * x, z * y, z * z},
	)
	cross := mgl32.Mat3FromRows(
		mgl32.Vec3{0, -z, y},
		mgl32.Vec3{z, 0, -x},
		mgl32.Vec3{-y, x, 0},
	)

	r := mgl32.Ident3().Mul(cos).
		Add(outer.Mul(1 - cos)).
		Add(cross.Mul(sin))
	return homogeneous(r)
}

func homogeneous(m mgl32.Mat3) mgl32.Mat4 {
	return mgl32.Mat4FromRows(
		mgl32.Vec4{m.At(0, 0), m.At(0, 1), m.At(0, 2), 0},
		mgl32.Vec4{m.At(1, 0), m.At(1, 1), m.At(1, 2), 0},
		mgl32.Vec4{m.At(2, 0), m.At(2, 1), m.At(2, 2), 0},
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// FrustumBox is the view-frustum cross-section at the near plane.
type FrustumBox struct {
	Left, Right, Bottom, Top float32
}

// HalfWidth returns half the horizontal extent of the box.
func (b FrustumBox) HalfWidth() float32 { return math32.Abs(b.Right-b.Left) / 2 }

// HalfHeight returns half the vertical extent of the box.
func (b FrustumBox) HalfHeight() float32 { return math32.Abs(b.Top-b.Bottom) / 2 }

// Frustum returns the near-plane box for a vertical field of view in degrees.
//
// Right is negative and Left positive: the box is laid out for a camera looking down -z.
func Frustum(fovDeg, aspect, near float32) FrustumBox {
	top := math32.Tan(mgl32.DegToRad(fovDeg/2)) * math32.Abs(near)
	right := -top * aspect
	return FrustumBox{
		Left:   -right,
		Right:  right,
		Bottom: -top,
		Top:    top,
	}
}

// Projection returns the perspective projection for a vertical field of view in
// degrees. near and far are positive distances in front of the camera.
//
// The frustum is first squashed into a box (perspective), then that box is
// centred on the origin (translate) and scaled to the [-1,1] cube (scale).
func Projection(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	n, f := -near, -far
	b := Frustum(fovDeg, aspect, n)

	translate := mgl32.Mat4FromRows(
		mgl32.Vec4{1, 0, 0, -(b.Right + b.Left) / 2},
		mgl32.Vec4{0, 1, 0, -(b.Top + b.Bottom) / 2},
		mgl32.Vec4{0, 0, 1, -(n + f) / 2},
		mgl32.Vec4{0, 0, 0, 1},
	)
	scale := mgl32.Mat4FromRows(
		mgl32.Vec4{2 / (b.Right - b.Left), 0, 0, 0},
		mgl32.Vec4{0, 2 / (b.Top - b.Bottom), 0, 0},
		mgl32.Vec4{0, 0, 2 / (n - f), 0},
		mgl32.Vec4{0, 0, 0, 1},
	)
	perspective := mgl32.Mat4FromRows(
		mgl32.Vec4{n, 0, 0, 0},
		mgl32.Vec4{0, n, 0, 0},
		mgl32.Vec4{0, 0, n + f, -n * f},
		mgl32.Vec4{0, 0, 1, 0},
	)

	return scale.Mul4(translate).Mul4(perspective)
}
