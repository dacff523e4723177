// Package app implements the application layer for whisk.
package app

import (
	"context"

	"go.trai.ch/whisk/internal/engine/configure"
	"go.trai.ch/whisk/internal/engine/setup"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	gate         *setup.Gate
	configurator *configure.Configurator
}

// New creates a new App instance.
func New(gate *setup.Gate, configurator *configure.Configurator) *App {
	return &App{
		gate:         gate,
		configurator: configurator,
	}
}

// Setup brings the Python environment for the project up to date and returns
// its path.
func (a *App) Setup(ctx context.Context, cfg setup.Config) (string, error) {
	envDir, err := a.gate.EnsureReady(ctx, cfg)
	if err != nil {
		return "", zerr.Wrap(err, "environment setup failed")
	}
	return envDir, nil
}

// Configure resolves the build selection and generates the configuration
// output for the project rooted at root.
func (a *App) Configure(ctx context.Context, root, confPath string, opts configure.Options) error {
	if err := a.configurator.Run(ctx, root, confPath, opts); err != nil {
		return zerr.Wrap(err, "configure failed")
	}
	return nil
}
