package ports

// FingerprintStore persists the last-known-good setup fingerprint.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get returns the recorded fingerprint at path.
	// Returns "" with a nil error when no record exists.
	Get(path string) (string, error)

	// Put writes the fingerprint to path, replacing any prior record.
	Put(path, fingerprint string) error
}
