package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeManifestHash computes the content hash of the dependency manifest
	// at the given path.
	ComputeManifestHash(path string) (string, error)
}
