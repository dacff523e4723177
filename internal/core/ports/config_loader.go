package ports

import "go.trai.ch/whisk/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project configuration at path. The project root is made
	// available to the configuration as WHISK_PROJECT_ROOT during template
	// expansion.
	Load(root, path string) (*domain.Project, error)
}
