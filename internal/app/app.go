package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/docs"
	"github.com/vk/docgraph/internal/registry"
)

// App encapsulates the planner's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	model    *config.Model
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, a loaded and
// validated workspace model, and the plugin registry populated. A failure to
// load the workspace is a fatal startup error and panics; the entrypoint
// recovers it into a clean exit.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.WorkspacePath)
	if err != nil {
		panic(fmt.Errorf("failed to load workspace: %w", err))
	}
	logger.Debug("Workspace loaded into unified model.", "modules", len(model.Modules))

	// CLI overrides land before validation and defaulting so a version
	// override propagates into every module that inherits it.
	if appConfig.ProductVersion != "" {
		logger.Debug("Overriding product version from CLI.", "version", appConfig.ProductVersion)
		model.Workspace.Version = appConfig.ProductVersion
	}
	if appConfig.StrictLinks != "" {
		mode, err := config.ParseStrictMode(appConfig.StrictLinks)
		if err != nil {
			panic(err)
		}
		model.Workspace.StrictLinks = mode
	}

	if err := model.Validate(); err != nil {
		panic(fmt.Errorf("invalid workspace: %w", err))
	}
	model.ApplyDefaults()
	logger.Debug("Workspace validated and defaults applied.")

	reg := registry.New()
	reg.Register(docs.New(model.Workspace.StrictLinks))
	logger.Debug("Plugins registered.", "count", len(reg.Plugins()))

	return &App{
		outW:     outW,
		logger:   logger,
		model:    model,
		registry: reg,
	}
}

// Model returns the loaded workspace model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
