package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phong3d.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scene]\npath = \"a.yaml\"\nwatch = true\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--scene", "b.yaml", "--debug", "--no-watch"}))

	cfg, err := loadConfig(cmd, path, "b.yaml", true, true)
	require.NoError(t, err)

	assert.Equal(t, "b.yaml", cfg.Scene.Path)
	assert.False(t, cfg.Scene.Watch)
	assert.True(t, cfg.Log.Debug)
}

func TestConfigWithoutFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phong3d.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scene]\npath = \"a.yaml\"\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	cfg, err := loadConfig(cmd, path, "", false, false)
	require.NoError(t, err)

	assert.Equal(t, "a.yaml", cfg.Scene.Path)
	assert.True(t, cfg.Scene.Watch)
	assert.False(t, cfg.Log.Debug)
}

func TestFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	f := cmd.Flags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "phong3d.toml", f.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("scene"))
}
