package scene

import (
	"fmt"
	"sort"
)

var presets = map[string]func() Scene{
	"single": single,
	"pair":   pair,
	"cube":   cube,
}

// PresetNames returns the built-in scene names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a built-in scene by name.
func Preset(name string) (Scene, error) {
	fn, ok := presets[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalid, name, PresetNames())
	}
	return fn(), nil
}

// Default returns the "pair" preset.
func Default() Scene { return pair() }

func base(name string) Scene {
	return Scene{
		Name:   name,
		Width:  700,
		Height: 700,
		Mode:   "fill",
		Camera: Camera{
			Eye:  [3]float32{0, 0, 5},
			FOV:  45,
			Near: 0.1,
			Far:  50,
		},
		Model: Model{
			Axis: [3]float32{0, 0, 1},
		},
	}
}

// single is one white triangle in front of the camera.
func single() Scene {
	s := base("single")
	s.Triangles = []Triangle{
		{Vertices: [3][3]float32{{2, 0, -2}, {0, 2, -2}, {-2, 0, -2}}, Color: [3]int{255, 255, 255}},
	}
	return s
}

// pair is two overlapping triangles at different depths.
func pair() Scene {
	s := base("pair")
	s.Triangles = []Triangle{
		{Vertices: [3][3]float32{{2, 0, -2}, {0, 2, -2}, {-2, 0, -2}}, Color: [3]int{217, 238, 185}},
		{Vertices: [3][3]float32{{3.5, -1, -5}, {2.5, 1.5, -5}, {-1, 0.5, -5}}, Color: [3]int{185, 217, 238}},
	}
	return s
}

// cube is a 2×2×2 cube around the origin, two triangles per face.
func cube() Scene {
	s := base("cube")
	s.Model = Model{Axis: [3]float32{0.70710677, 0.70710677, 0}, Angle: 30}

	// Corners indexed by bit: x=bit0, y=bit1, z=bit2.
	var p [8][3]float32
	for i := range p {
		p[i] = [3]float32{float32(i&1)*2 - 1, float32(i>>1&1)*2 - 1, float32(i>>2&1)*2 - 1}
	}
	faces := []struct {
		quad  [4]int
		color [3]int
	}{
		{[4]int{4, 5, 7, 6}, [3]int{230, 80, 70}},  // +z
		{[4]int{1, 0, 2, 3}, [3]int{70, 200, 90}},  // -z
		{[4]int{5, 1, 3, 7}, [3]int{80, 120, 230}}, // +x
		{[4]int{0, 4, 6, 2}, [3]int{240, 200, 60}}, // -x
		{[4]int{6, 7, 3, 2}, [3]int{200, 90, 220}}, // +y
		{[4]int{0, 1, 5, 4}, [3]int{70, 210, 210}}, // -y
	}
	for _, f := range faces {
		q := f.quad
		s.Triangles = append(s.Triangles,
			Triangle{Vertices: [3][3]float32{p[q[0]], p[q[1]], p[q[2]]}, Color: f.color},
			Triangle{Vertices: [3][3]float32{p[q[0]], p[q[2]], p[q[3]]}, Color: f.color},
		)
	}
	return s
}
