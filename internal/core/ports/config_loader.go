package ports

import "go.trai.ch/iconpick/internal/core/domain"

// ConfigLoader defines the interface for loading the picker configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for the config file and returns the resolved
	// configuration. A missing file yields the defaults, not an error.
	Load(cwd string) (*domain.Config, error)
}
