package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.UserConfigStore = (*UserCacheStore)(nil)

// UserCacheStore implements ports.UserConfigStore using a YAML file.
type UserCacheStore struct{}

// NewUserCacheStore creates a new user configuration cache store.
func NewUserCacheStore() *UserCacheStore {
	return &UserCacheStore{}
}

// Load reads the cached selection. Absent files and records written with a
// different cache version yield nil, nil: a stale record is equivalent to no
// record.
func (s *UserCacheStore) Load(path string) (*domain.UserConfig, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read user config cache"), "path", path)
	}

	var cfg domain.UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse user config cache"), "path", path)
	}

	if cfg.CacheVersion != domain.UserCacheVersion {
		return nil, nil
	}

	return &cfg, nil
}

// Save writes the selection, replacing any prior record.
func (s *UserCacheStore) Save(path string, cfg domain.UserConfig) error {
	cfg.CacheVersion = domain.UserCacheVersion

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal user config cache")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", path)
	}

	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write user config cache"), "path", path)
	}

	return nil
}
