package rast

import (
	"fmt"
	"image"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default depth range. Projection matrices built for a different near/far pair need a
// matching SetDepthRange call.
const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 50.0
)

// RenderMode selects how Draw scan-converts triangles.
type RenderMode uint8

const (
	// ModeFill fills triangles with their flat colour and depth-tests every pixel.
	ModeFill RenderMode = iota
	// ModeWireframe draws the three edges with Bresenham lines and no depth test.
	ModeWireframe
)

func (m RenderMode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeWireframe:
		return "wireframe"
	}
	return fmt.Sprintf("RenderMode(%d)", uint8(m))
}

// ParseRenderMode parses "fill" or "wireframe" ("wire" is accepted too).
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return ModeFill, nil
	case "wire", "wireframe":
		return ModeWireframe, nil
	}
	return ModeFill, fmt.Errorf("rast: unknown render mode %q", s)
}

// State is the rasterizer lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateConfigured
	StateDrawn
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateDrawn:
		return "drawn"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

const (
	setModel = 1 << iota
	setView
	setProjection

	setAll = setModel | setView | setProjection
)

// DrawStats summarizes one Draw call.
type DrawStats struct {
	Triangles int // submitted
	Drawn     int // rasterized
	Skipped   int // degenerate or with a vertex at w == 0
	Fragments int // pixels written
}

// Rasterizer owns a colour buffer, a depth buffer and the current model, view and
// projection matrices. It is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	mode   RenderMode

	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
	set        uint8
	drawn      bool

	near, far float32

	frame []Color
	depth []float32
}

// New returns a w×h rasterizer with black colour, +Inf depth and identity matrices.
// It panics if either dimension is not positive.
func New(w, h int) *Rasterizer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("rast: invalid size %dx%d", w, h))
	}
	r := &Rasterizer{
		width:      w,
		height:     h,
		mode:       ModeFill,
		model:      mgl32.Ident4(),
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
		near:       DefaultNear,
		far:        DefaultFar,
	}
	r.Clear()
	return r
}

// Clear reallocates both buffers: every pixel black, every depth +Inf.
// Matrices, depth range and mode are kept.
func (r *Rasterizer) Clear() {
	n := r.width * r.height
	r.frame = make([]Color, n)
	r.depth = make([]float32, n)
	inf := math32.Inf(1)
	for i := range r.depth {
		r.depth[i] = inf
	}
	r.drawn = false
	r.mustBeSized()
}

func (r *Rasterizer) mustBeSized() {
	n := r.width * r.height
	if len(r.frame) != n || len(r.depth) != n {
		panic(fmt.Sprintf("rast: buffer size mismatch: frame=%d depth=%d want %d", len(r.frame), len(r.depth), n))
	}
}

func (r *Rasterizer) Size() (w, h int) { return r.width, r.height }

func (r *Rasterizer) SetModel(m mgl32.Mat4)      { r.model = m; r.set |= setModel }
func (r *Rasterizer) SetView(m mgl32.Mat4)       { r.view = m; r.set |= setView }
func (r *Rasterizer) SetProjection(m mgl32.Mat4) { r.projection = m; r.set |= setProjection }

func (r *Rasterizer) SetMode(m RenderMode) { r.mode = m }
func (r *Rasterizer) Mode() RenderMode     { return r.mode }

// SetDepthRange sets the near/far distances the depth remap targets. They must match
// the values the projection matrix was built with.
func (r *Rasterizer) SetDepthRange(near, far float32) {
	r.near, r.far = near, far
}

func (r *Rasterizer) DepthRange() (near, far float32) { return r.near, r.far }

// State reports Uninitialized until all three matrices have been set, then Configured,
// and Drawn after a Draw that follows the last Clear.
func (r *Rasterizer) State() State {
	switch {
	case r.set != setAll:
		return StateUninitialized
	case r.drawn:
		return StateDrawn
	}
	return StateConfigured
}

// MVP returns projection * view * model.
func (r *Rasterizer) MVP() mgl32.Mat4 {
	return r.projection.Mul4(r.view).Mul4(r.model)
}

// Draw rasterizes triangles in order into the buffers. Later triangles replace a pixel
// only when strictly nearer. Degenerate triangles are skipped.
func (r *Rasterizer) Draw(tris []Triangle) DrawStats {
	r.mustBeSized()
	st := DrawStats{Triangles: len(tris)}
	mvp := r.MVP()

	for _, t := range tris {
		s, ok := r.toScreen(t, mvp)
		if !ok {
			st.Skipped++
			continue
		}
		switch r.mode {
		case ModeWireframe:
			st.Fragments += r.wireframe(s)
		default:
			n, err := r.fill(s)
			if err != nil {
				st.Skipped++
				continue
			}
			st.Fragments += n
		}
		st.Drawn++
	}
	r.drawn = true
	return st
}

// toScreen returns a copy of t with x, y in pixels, z in the depth range and the clip
// w kept for perspective-correct interpolation.
func (r *Rasterizer) toScreen(t Triangle, mvp mgl32.Mat4) (Triangle, bool) {
	f1 := (r.far - r.near) / 2
	f2 := (r.far + r.near) / 2
	w, h := float32(r.width), float32(r.height)

	var out [3]mgl32.Vec4
	for i, v := range t.v {
		clip := mvp.Mul4x1(v)
		cw := clip.W()
		if cw == 0 || math32.IsNaN(cw) {
			return Triangle{}, false
		}
		ndc := clip.Vec3().Mul(1 / cw)
		// NDC z is +1 at the near plane and -1 at the far plane.
		out[i] = mgl32.Vec4{
			0.5 * w * (1 + ndc.X()),
			0.5 * h * (1 - ndc.Y()),
			-ndc.Z()*f1 + f2,
			cw,
		}
	}
	t.v = out
	return t, true
}

func (r *Rasterizer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, false
	}
	return y*r.width + x, true
}

func (r *Rasterizer) setPixel(x, y int, c Color) bool {
	i, ok := r.offset(x, y)
	if !ok {
		return false
	}
	r.frame[i] = c
	return true
}

// Pixel returns the colour at (x, y), or black outside the buffer.
func (r *Rasterizer) Pixel(x, y int) Color {
	i, ok := r.offset(x, y)
	if !ok {
		return Black
	}
	return r.frame[i]
}

// Depth returns the depth at (x, y), or +Inf outside the buffer.
func (r *Rasterizer) Depth(x, y int) float32 {
	i, ok := r.offset(x, y)
	if !ok {
		return math32.Inf(1)
	}
	return r.depth[i]
}

// Bytes returns the colour buffer as packed RGB, width*height*3 bytes, row-major with
// the origin at the top-left.
func (r *Rasterizer) Bytes() []byte {
	out := make([]byte, 0, len(r.frame)*3)
	for _, c := range r.frame {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// Image returns a copy of the colour buffer.
func (r *Rasterizer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, c := range r.frame {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}
	return img
}

// Blit copies the colour buffer into t, clipped to the smaller of the two sizes.
func (r *Rasterizer) Blit(t Target) {
	if t == nil {
		return
	}
	tw, th := t.Size()
	w, h := min(tw, r.width), min(th, r.height)
	for y := 0; y < h; y++ {
		row := r.frame[y*r.width : y*r.width+w]
		for x, c := range row {
			t.SetPixel(x, y, c)
		}
	}
}
