// Package setup implements the idempotent environment setup gate.
//
// The gate decides whether the cached environment is stale relative to a
// fingerprint of the current source state and, if so, rebuilds it and records
// the new fingerprint. Invocations are synchronous and unlocked: concurrent
// runs against the same paths race, and callers must serialize externally.
package setup

import (
	"context"
	"path/filepath"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultManifest is the dependency manifest path relative to the root.
	DefaultManifest = "requirements.txt"
	// DefaultEnvDir is the environment path relative to the root.
	DefaultEnvDir = ".whisk/venv"
	// recordName is the fingerprint record file inside the environment.
	recordName = ".setup-fingerprint"
)

// Config carries the paths one gate invocation operates on. Paths are
// explicit so tests and multiple independent environments do not share
// global state.
type Config struct {
	// Root is the project root; it must be inside a tracked source tree.
	Root string
	// Manifest is the dependency manifest path. Defaults to
	// <Root>/requirements.txt.
	Manifest string
	// EnvDir is the environment directory. Defaults to <Root>/.whisk/venv.
	EnvDir string
	// Record is the fingerprint record path. Defaults to a file inside
	// EnvDir.
	Record string
}

func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Manifest == "" {
		c.Manifest = filepath.Join(c.Root, DefaultManifest)
	}
	if c.EnvDir == "" {
		c.EnvDir = filepath.Join(c.Root, DefaultEnvDir)
	}
	if c.Record == "" {
		c.Record = filepath.Join(c.EnvDir, recordName)
	}
	return c
}

// Gate checks environment freshness and rebuilds when stale.
type Gate struct {
	revision  ports.RevisionProvider
	hasher    ports.Hasher
	store     ports.FingerprintStore
	envs      ports.EnvironmentManager
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewGate creates a new setup Gate.
func NewGate(
	revision ports.RevisionProvider,
	hasher ports.Hasher,
	store ports.FingerprintStore,
	envs ports.EnvironmentManager,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Gate {
	return &Gate{
		revision:  revision,
		hasher:    hasher,
		store:     store,
		envs:      envs,
		logger:    logger,
		telemetry: telemetry,
	}
}

// EnsureReady makes sure the environment matches the current source state and
// returns its resolved path for the caller to use explicitly.
//
// The record is written only after creation and installation both succeed; a
// failed rebuild leaves the prior record untouched, so the next invocation
// retries the full rebuild.
func (g *Gate) EnsureReady(ctx context.Context, cfg Config) (string, error) {
	cfg = cfg.withDefaults()

	fingerprint, err := g.computeFingerprint(ctx, cfg)
	if err != nil {
		return "", err
	}

	recorded, err := g.store.Get(cfg.Record)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read cache record")
	}

	ctx, vtx := g.telemetry.Record(ctx, "setup python environment")

	if recorded == fingerprint {
		vtx.Cached()
		vtx.Complete(nil)
		g.logger.Info("environment up to date")
		return cfg.EnvDir, nil
	}

	if err := g.rebuild(ctx, cfg, fingerprint); err != nil {
		vtx.Complete(err)
		return "", err
	}

	vtx.Complete(nil)
	return cfg.EnvDir, nil
}

func (g *Gate) computeFingerprint(ctx context.Context, cfg Config) (string, error) {
	rev, err := g.revision.Revision(ctx, cfg.Root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine source revision")
	}

	hash, err := g.hasher.ComputeManifestHash(cfg.Manifest)
	if err != nil {
		return "", zerr.Wrap(err, "failed to hash manifest")
	}

	return domain.Fingerprint{Revision: rev, ManifestHash: hash}.String(), nil
}

func (g *Gate) rebuild(ctx context.Context, cfg Config, fingerprint string) error {
	g.logger.Info("environment stale, rebuilding")

	if err := g.envs.Create(ctx, cfg.EnvDir); err != nil {
		return zerr.Wrap(err, "failed to create environment")
	}

	if err := g.envs.Install(ctx, cfg.EnvDir, cfg.Manifest); err != nil {
		return zerr.Wrap(err, "failed to install dependencies")
	}

	if err := g.store.Put(cfg.Record, fingerprint); err != nil {
		return zerr.Wrap(err, "failed to write cache record")
	}

	return nil
}
