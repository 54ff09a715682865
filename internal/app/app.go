package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/vqalaunch/internal/ctxlog"
	"github.com/vk/vqalaunch/internal/hclcfg"
	"github.com/vk/vqalaunch/internal/preset"
	"github.com/vk/vqalaunch/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a validated
// registry of launch configurations. Command output goes to outW; log
// records go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader *hclcfg.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if err := reg.AddAll(ctx, preset.All()); err != nil {
		// Built-ins are authored in this repo; failing to register one is a
		// programmer error.
		panic(fmt.Errorf("invalid built-in configuration: %w", err))
	}
	logger.Debug("Built-in configurations registered.", "count", reg.Len())

	if len(appConfig.ConfigPaths) > 0 {
		loaded, err := loader.Load(ctx, appConfig.ConfigPaths...)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		if err := reg.AddAll(ctx, loaded); err != nil {
			panic(fmt.Errorf("failed to register configuration: %w", err))
		}
		logger.Debug("User configurations registered.", "loaded", len(loaded))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
