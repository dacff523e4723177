// Package fs provides filesystem adapters: manifest hashing and the
// fingerprint record store.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides content hashing for manifest files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeManifestHash computes the content hash of the dependency manifest.
func (h *Hasher) ComputeManifestHash(path string) (string, error) {
	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "manifest", path)
	}

	return fmt.Sprintf("%016x", hash), nil
}
