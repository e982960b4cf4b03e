package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int32(1024), cfg.Window.Width)
	assert.Empty(t, cfg.Scene.Path)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phong3d.toml")
	src := `
[window]
width = 800
title = "demo"

[scene]
path = "assets/scenes/three-lights.yaml"
watch = false

[render]
clear_color = [0.1, 0.2, 0.3]

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(768), cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, "assets/scenes/three-lights.yaml", cfg.Scene.Path)
	assert.False(t, cfg.Scene.Watch)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, cfg.Render.ClearColor)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":      "[window\n",
		"size":        "[window]\nwidth = 0\n",
		"clear color": "[render]\nclear_color = [2, 0, 0]\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phong3d.toml")
	cfg := Default()
	cfg.Scene.Path = "scene.yaml"
	cfg.Log.Debug = true

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}
