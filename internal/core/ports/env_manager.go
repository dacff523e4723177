package ports

import "context"

// EnvironmentManager provisions the isolated dependency environment.
//
// The underlying environment and dependency tooling is treated as a black box
// invoked with a fixed calling convention; no installation semantics are
// modeled here.
//
//go:generate go run go.uber.org/mock/mockgen -source=env_manager.go -destination=mocks/mock_env_manager.go -package=mocks
type EnvironmentManager interface {
	// Create creates or refreshes the environment at dir. Creation is
	// in-place: an existing environment is upgraded rather than removed, so
	// prior state survives a failed refresh.
	Create(ctx context.Context, dir string) error

	// Install installs the dependencies declared in the manifest into the
	// environment at dir.
	Install(ctx context.Context, dir, manifest string) error
}
