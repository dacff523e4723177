// Package venv provides the environment manager adapter backed by python venv
// and pip.
package venv

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentManager = (*Manager)(nil)

// Manager implements ports.EnvironmentManager using python -m venv and pip.
type Manager struct {
	python string
	logger ports.Logger
}

// NewManager creates a new venv-backed EnvironmentManager.
func NewManager(logger ports.Logger) *Manager {
	return NewManagerWithPython("python3", logger)
}

// NewManagerWithPython creates a Manager using a specific python executable.
func NewManagerWithPython(python string, logger ports.Logger) *Manager {
	return &Manager{
		python: python,
		logger: logger,
	}
}

// Create creates or refreshes the virtual environment at dir.
// venv creation is in-place: an existing environment is upgraded rather than
// removed first, so prior state survives a failed refresh.
func (m *Manager) Create(ctx context.Context, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o750); err != nil {
		createErr := zerr.Wrap(err, domain.ErrEnvCreationFailed.Error())
		return zerr.With(createErr, "dir", dir)
	}

	//nolint:gosec // python executable and dir come from trusted configuration
	cmd := exec.CommandContext(ctx, m.python, "-m", "venv", dir)

	if output, err := cmd.CombinedOutput(); err != nil {
		createErr := zerr.Wrap(err, domain.ErrEnvCreationFailed.Error())
		createErr = zerr.With(createErr, "dir", dir)
		createErr = zerr.With(createErr, "python", m.python)
		return zerr.With(createErr, "output", strings.TrimSpace(string(output)))
	}

	return nil
}

// Install installs the dependencies declared in the manifest into the
// environment at dir. Installer output is streamed to the logger, or to the
// telemetry vertex when one is carried by ctx.
func (m *Manager) Install(ctx context.Context, dir, manifest string) error {
	pip := filepath.Join(dir, "bin", "pip")

	//nolint:gosec // pip path is derived from the environment dir we created
	cmd := exec.CommandContext(ctx, pip, "install", "--requirement", manifest)

	if vtx, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = vtx.Stdout()
		cmd.Stderr = vtx.Stderr()
	} else {
		cmd.Stdout = &logWriter{logger: m.logger, level: "info"}
		cmd.Stderr = &logWriter{logger: m.logger, level: "error"}
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		installErr = zerr.With(installErr, "manifest", manifest)
		installErr = zerr.With(installErr, "dir", dir)
		return zerr.With(installErr, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
