package ports

import "go.trai.ch/nativeimage/internal/core/domain"

// ConfigLoader defines the interface for resolving the driver environment.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads environment variables and the optional user configuration file.
	Load() (*domain.DriverConfig, error)
}
