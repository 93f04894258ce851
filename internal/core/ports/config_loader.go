package ports

import "go.trai.ch/bundler/internal/core/domain"

// ConfigLoader defines the interface for loading the project description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at path. An empty path looks for the default
	// project file in the working directory and falls back to built-in defaults.
	Load(path string) (domain.Project, error)
}
