package ports

import "go.trai.ch/pyprune/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration. An empty path discovers pyprune.yaml by walking up
	// from cwd and falls back to built-in defaults; a non-empty path must exist.
	Load(cwd, path string) (*domain.Config, error)
}
