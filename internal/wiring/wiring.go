// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/whisk/internal/adapters/config"
	_ "go.trai.ch/whisk/internal/adapters/fs"
	_ "go.trai.ch/whisk/internal/adapters/git"
	_ "go.trai.ch/whisk/internal/adapters/logger"
	_ "go.trai.ch/whisk/internal/adapters/telemetry"
	_ "go.trai.ch/whisk/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.trai.ch/whisk/internal/app"
	_ "go.trai.ch/whisk/internal/engine/configure"
	_ "go.trai.ch/whisk/internal/engine/setup"
)
