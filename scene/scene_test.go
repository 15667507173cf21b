package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softrast/rast"
)

const sampleTOML = `
name = "sample"
width = 320
height = 240
mode = "wireframe"

[camera]
eye = [0.0, 0.0, 6.0]
fov = 60.0
near = 0.5
far = 20.0

[model]
axis = [0.0, 2.0, 0.0]
angle = 15.0

[[triangles]]
vertices = [[1.0, 0.0, -2.0], [0.0, 1.0, -2.0], [-1.0, 0.0, -2.0]]
color = [255, 0, 0]

[[triangles]]
vertices = [[2.0, -1.0, -4.0], [0.0, 2.0, -4.0], [-2.0, -1.0, -4.0]]
color = [0, 0, 255]
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, 320, s.Width)
	assert.Equal(t, 240, s.Height)
	assert.Equal(t, rast.ModeWireframe, s.RenderMode())
	assert.Equal(t, [3]float32{0, 0, 6}, s.Camera.Eye)
	assert.Equal(t, float32(60), s.Camera.FOV)
	assert.InDelta(t, 320.0/240.0, s.AspectRatio(), 1e-6, "aspect defaults to width/height")
	require.Len(t, s.Triangles, 2)
	assert.Equal(t, [3]int{0, 0, 255}, s.Triangles[1].Color)

	axis, normalized := s.Axis()
	assert.True(t, normalized)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, axis)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("width = 10\nbogus = 1\n"))
	assert.Error(t, err)
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode(strings.NewReader("width = 10\nheight = 10\n[camera]\nnear = 5.0\nfar = 1.0\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scene)
	}{
		{"size", func(s *Scene) { s.Width = 0 }},
		{"fov", func(s *Scene) { s.Camera.FOV = 180 }},
		{"aspect", func(s *Scene) { s.Camera.Aspect = -1 }},
		{"near", func(s *Scene) { s.Camera.Near = 0 }},
		{"far", func(s *Scene) { s.Camera.Far = s.Camera.Near }},
		{"axis", func(s *Scene) { s.Model.Axis = [3]float32{} }},
		{"mode", func(s *Scene) { s.Mode = "points" }},
		{"colour", func(s *Scene) { s.Triangles[0].Color[1] = 256 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			require.NoError(t, s.Validate())
			tc.mutate(&s)
			assert.True(t, errors.Is(s.Validate(), ErrInvalid), "Validate() = %v", s.Validate())
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.toml")
	want, err := Preset("cube")
	require.NoError(t, err)
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeIsTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))
	assert.Contains(t, buf.String(), "[camera]")
	assert.Contains(t, buf.String(), "[[triangles]]")
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"cube", "pair", "single"}, PresetNames())
	for _, name := range PresetNames() {
		s, err := Preset(name)
		require.NoError(t, err, name)
		require.NoError(t, s.Validate(), name)
		_, normalized := s.Axis()
		assert.False(t, normalized, "%s axis should already be unit length", name)
	}
	c, _ := Preset("cube")
	assert.Len(t, c.Triangles, 12)

	_, err := Preset("teapot")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApply(t *testing.T) {
	s := Default()
	s.Width, s.Height = 140, 140
	s.Camera.Near, s.Camera.Far = 0.5, 30
	r := s.NewRasterizer()

	assert.Equal(t, rast.StateConfigured, r.State())
	near, far := r.DepthRange()
	assert.Equal(t, float32(0.5), near)
	assert.Equal(t, float32(30), far)

	want := rast.Projection(45, 1, 0.5, 30).Mul4(rast.View(mgl32.Vec3{0, 0, 5})).Mul4(rast.Model(mgl32.Vec3{0, 0, 1}, 0))
	got := r.MVP()
	assert.InDeltaSlice(t, want[:], got[:], 1e-6)

	st := r.Draw(s.RastTriangles())
	assert.Equal(t, 2, st.Drawn)
	assert.Positive(t, st.Fragments)
	// The nearer triangle covers the centre.
	assert.Equal(t, rast.RGB(217, 238, 185), r.Pixel(70, 60))
}

func TestRastTriangles(t *testing.T) {
	tris := Default().RastTriangles()
	require.Len(t, tris, 2)
	assert.Equal(t, mgl32.Vec4{2, 0, -2, 1}, tris[0].A())
	assert.Equal(t, rast.RGB(185, 217, 238), tris[1].Color())
}
