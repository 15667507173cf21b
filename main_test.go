package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softrast/rast"
	"softrast/scene"
)

func TestLoadScenePresetOverrides(t *testing.T) {
	s, err := loadScene(options{preset: "cube", mode: "wire", width: 320, height: 200})
	require.NoError(t, err)
	assert.Equal(t, "cube", s.Name)
	assert.Equal(t, rast.ModeWireframe, s.RenderMode())
	assert.Equal(t, 320, s.Width)
	assert.Equal(t, 200, s.Height)
}

func TestLoadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	want, _ := scene.Preset("single")
	require.NoError(t, scene.Save(path, want))

	got, err := loadScene(options{scene: path, preset: "cube"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSceneErrors(t *testing.T) {
	_, err := loadScene(options{preset: "nope"})
	assert.ErrorIs(t, err, scene.ErrInvalid)

	_, err = loadScene(options{preset: "pair", mode: "dots"})
	assert.ErrorIs(t, err, scene.ErrInvalid)
}
