package scene

import "github.com/chewxy/math32"

// OrbitController turns discrete input into the rotation angle and eye distance of a
// scene.
//
// It does not depend on any input system; callers map their own events onto Rotate,
// Zoom and Reset.
type OrbitController struct {
	Angle    float32 // degrees, kept in [0, 360)
	Distance float32 // eye z

	MinDistance float32
	MaxDistance float32

	homeAngle    float32
	homeDistance float32
}

// Default steps for key-driven control.
const (
	RotateStep float32 = 10
	ZoomStep   float32 = 0.5
)

// NewOrbitController starts from the rotation and eye distance of s.
func NewOrbitController(s Scene) *OrbitController {
	c := &OrbitController{
		Angle:       wrapDegrees(s.Model.Angle),
		Distance:    s.Camera.Eye[2],
		MinDistance: 1,
		MaxDistance: s.Camera.Far * 0.8,
	}
	c.homeAngle, c.homeDistance = c.Angle, c.Distance
	return c
}

func (c *OrbitController) Rotate(deltaDeg float32) {
	c.Angle = wrapDegrees(c.Angle + deltaDeg)
}

func (c *OrbitController) Zoom(delta float32) {
	c.Distance += delta
	if c.MinDistance != 0 && c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.MaxDistance != 0 && c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Reset returns to the values the controller was created with.
func (c *OrbitController) Reset() {
	c.Angle, c.Distance = c.homeAngle, c.homeDistance
}

// Apply writes the controller state into s.
func (c *OrbitController) Apply(s *Scene) {
	if s == nil {
		return
	}
	s.Model.Angle = c.Angle
	s.Camera.Eye[2] = c.Distance
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
