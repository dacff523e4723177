package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*RecordStore)(nil)

// RecordStore implements ports.FingerprintStore using a flat file.
// The record holds the fingerprint verbatim and is compared byte-for-byte.
type RecordStore struct{}

// NewRecordStore creates a new fingerprint record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Get returns the recorded fingerprint, or "" when no record exists.
func (s *RecordStore) Get(path string) (string, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read fingerprint record"), "path", path)
	}

	return string(data), nil
}

// Put writes the fingerprint, replacing any prior record.
func (s *RecordStore) Put(path, fingerprint string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create record directory"), "path", path)
	}

	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(path, []byte(fingerprint), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write fingerprint record"), "path", path)
	}

	return nil
}
