// Command mkscene writes a built-in scene as TOML, ready to edit and pass to -scene.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"softrast/scene"
)

func main() {
	var (
		preset = flag.String("preset", "pair", "Built-in scene: "+strings.Join(scene.PresetNames(), "|")+".")
		out    = flag.String("out", "", "Output .toml file (default stdout).")
		mode   = flag.String("mode", "", "Override draw mode: fill|wireframe.")
		width  = flag.Int("width", 0, "Override image width.")
		height = flag.Int("height", 0, "Override image height.")
		list   = flag.Bool("list", false, "List the built-in scenes and exit.")
	)
	flag.Parse()

	if *list {
		for _, name := range scene.PresetNames() {
			s, _ := scene.Preset(name)
			fmt.Printf("%-8s %dx%d %d triangles\n", name, s.Width, s.Height, len(s.Triangles))
		}
		return
	}

	s, err := scene.Preset(*preset)
	if err != nil {
		fatalf("%v", err)
	}
	if *mode != "" {
		s.Mode = *mode
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}
	if err := s.Validate(); err != nil {
		fatalf("%v", err)
	}

	if *out == "" {
		if err := scene.Encode(os.Stdout, s); err != nil {
			fatalf("write: %v", err)
		}
		return
	}
	if err := scene.Save(*out, s); err != nil {
		fatalf("write %s: %v", *out, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
