// Package scene describes what the rasterizer draws: the camera, one object rotation
// and an ordered list of flat-coloured triangles. Scenes load from and save to TOML.
package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"softrast/rast"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid scene")

// Camera is an axis-aligned eye plus a perspective frustum. Angles are in degrees.
type Camera struct {
	Eye    [3]float32 `toml:"eye"`
	FOV    float32    `toml:"fov"`
	Aspect float32    `toml:"aspect,omitempty"` // 0 means width/height
	Near   float32    `toml:"near"`
	Far    float32    `toml:"far"`
}

// Model is the object rotation.
type Model struct {
	Axis  [3]float32 `toml:"axis"`
	Angle float32    `toml:"angle"`
}

// Triangle is one flat-coloured triangle in object space.
type Triangle struct {
	Vertices [3][3]float32 `toml:"vertices"`
	Color    [3]int        `toml:"color"`
}

// Scene is a complete frame description.
type Scene struct {
	Name      string     `toml:"name,omitempty"`
	Width     int        `toml:"width"`
	Height    int        `toml:"height"`
	Mode      string     `toml:"mode,omitempty"`
	Camera    Camera     `toml:"camera"`
	Model     Model      `toml:"model"`
	Triangles []Triangle `toml:"triangles"`
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (s Scene) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return invalid("size %dx%d", s.Width, s.Height)
	case !(s.Camera.FOV > 0 && s.Camera.FOV < 180):
		return invalid("fov %v not in (0, 180)", s.Camera.FOV)
	case s.Camera.Aspect < 0:
		return invalid("aspect %v", s.Camera.Aspect)
	case !(s.Camera.Near > 0):
		return invalid("near %v must be positive", s.Camera.Near)
	case !(s.Camera.Far > s.Camera.Near):
		return invalid("far %v must be beyond near %v", s.Camera.Far, s.Camera.Near)
	case s.Model.Axis == [3]float32{}:
		return invalid("zero rotation axis")
	}
	if _, err := rast.ParseRenderMode(s.Mode); err != nil {
		return invalid("%v", err)
	}
	for i, t := range s.Triangles {
		for _, c := range t.Color {
			if c < 0 || c > 255 {
				return invalid("triangle %d: colour %v out of range", i, t.Color)
			}
		}
	}
	return nil
}

// AspectRatio returns the configured aspect, or width/height when unset.
func (s Scene) AspectRatio() float32 {
	if s.Camera.Aspect > 0 {
		return s.Camera.Aspect
	}
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Eye returns the camera position.
func (s Scene) Eye() mgl32.Vec3 { return mgl32.Vec3(s.Camera.Eye) }

// Axis returns the unit rotation axis and whether the configured axis had to be
// normalized.
func (s Scene) Axis() (axis mgl32.Vec3, normalized bool) {
	a := mgl32.Vec3(s.Model.Axis)
	l := a.Len()
	if l == 0 {
		return a, false
	}
	if math32.Abs(l-1) <= 1e-6 {
		return a, false
	}
	return a.Mul(1 / l), true
}

// RenderMode returns the parsed draw mode, falling back to fill.
func (s Scene) RenderMode() rast.RenderMode {
	m, err := rast.ParseRenderMode(s.Mode)
	if err != nil {
		return rast.ModeFill
	}
	return m
}

// Apply sets all three matrices, the depth range and the draw mode on r. The depth
// range always matches the near/far the projection is built with.
func (s Scene) Apply(r *rast.Rasterizer) {
	axis, _ := s.Axis()
	c := s.Camera
	r.SetModel(rast.Model(axis, s.Model.Angle))
	r.SetView(rast.View(s.Eye()))
	r.SetProjection(rast.Projection(c.FOV, s.AspectRatio(), c.Near, c.Far))
	r.SetDepthRange(c.Near, c.Far)
	r.SetMode(s.RenderMode())
}

// RastTriangles converts the triangle list, preserving order.
func (s Scene) RastTriangles() []rast.Triangle {
	out := make([]rast.Triangle, 0, len(s.Triangles))
	for _, t := range s.Triangles {
		v := t.Vertices
		tri := rast.NewTriangle(mgl32.Vec3(v[0]), mgl32.Vec3(v[1]), mgl32.Vec3(v[2]))
		tri.SetColor(rast.RGB(uint8(t.Color[0]), uint8(t.Color[1]), uint8(t.Color[2])))
		out = append(out, tri)
	}
	return out
}

// NewRasterizer returns a rasterizer sized for s with s applied.
func (s Scene) NewRasterizer() *rast.Rasterizer {
	r := rast.New(s.Width, s.Height)
	s.Apply(r)
	return r
}
