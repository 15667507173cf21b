package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Decode reads a TOML scene. Unknown keys are rejected and the result is validated.
// Missing camera fields fall back to the Default scene's values.
func Decode(r io.Reader) (Scene, error) {
	s := Default()
	s.Name = ""
	s.Triangles = nil
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Load reads a TOML scene file.
func Load(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as TOML.
func Encode(w io.Writer, s Scene) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// Save writes s to path, replacing any existing file.
func Save(path string, s Scene) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
