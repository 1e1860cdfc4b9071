// Package main is the entry point for the azimuth/elevation sphere visualizer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/azel-sphere/internal/app"
	"github.com/Faultbox/azel-sphere/internal/config"
	"github.com/Faultbox/azel-sphere/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("dir", config.ConfigDir()))
		return
	}

	logger.Info("=== Azimuth/Elevation Sphere ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the visualizer
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create visualizer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("visualizer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("visualizer closed normally")
}
