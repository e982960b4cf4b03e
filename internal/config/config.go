package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "phong3d.toml"

type WindowConfig struct {
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Title  string `toml:"title"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
}

// SceneConfig picks the scene file. An empty path selects the built-in scene.
type SceneConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

type RenderConfig struct {
	ClearColor [3]float32 `toml:"clear_color"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

type Config struct {
	Window WindowConfig `toml:"window"`
	Scene  SceneConfig  `toml:"scene"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1024, Height: 768, Title: "Phong3D", X: 100, Y: 100},
		Scene:  SceneConfig{Watch: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear color component %v out of [0, 1]", v)
		}
	}
	return nil
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
