package main

import (
	"fmt"
	"os"

	"Phong3D/internal/config"
	"Phong3D/internal/engine"
	"Phong3D/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		scenePath  string
		debug      bool
		noWatch    bool
	)

	cmd := &cobra.Command{
		Use:   "phong3d",
		Short: "Interactive Phong-lit scene viewer",
		Long: `phong3d renders a scene of meshes lit by up to eight point, directional
and spot lights. Scenes are YAML files; without one the built-in scene is shown.

Keys: w wireframe, s solid, p pause, +/- animation speed, Esc quit.
Drag with the left button to orbit, scroll to zoom.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath, scenePath, debug, noWatch)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Log.Debug); err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer logger.Sync()
			if !cfg.Log.Debug && cfg.Log.Level != "" {
				if err := logger.SetLevel(cfg.Log.Level); err != nil {
					logger.Log.Warn("Unknown log level", zap.String("level", cfg.Log.Level))
				}
			}

			logger.Log.Info("Phong3D starting",
				zap.String("config", configPath),
				zap.String("scene", cfg.Scene.Path),
				zap.Bool("watch", cfg.Scene.Watch))
			return engine.NewViewer(cfg).Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "TOML config file")
	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "YAML scene file (overrides the config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "development logging at debug level")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the scene file on change")
	return cmd
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, path, scenePath string, debug, noWatch bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("scene") {
		cfg.Scene.Path = scenePath
	}
	if debug {
		cfg.Log.Debug = true
	}
	if noWatch {
		cfg.Scene.Watch = false
	}
	return cfg, nil
}
