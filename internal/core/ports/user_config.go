package ports

import "go.trai.ch/whisk/internal/core/domain"

// UserConfigStore persists the user's cached selection between configure runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=user_config.go -destination=mocks/mock_user_config.go -package=mocks
type UserConfigStore interface {
	// Load reads the cached selection at path.
	// Returns nil, nil when absent or recorded with a stale cache version.
	Load(path string) (*domain.UserConfig, error)

	// Save writes the selection to path, replacing any prior record.
	Save(path string, cfg domain.UserConfig) error
}
