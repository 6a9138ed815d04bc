package ports

import "go.trai.ch/nativeimage/internal/core/domain"

// OptionRegistry defines the catalogue of option bundles.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type OptionRegistry interface {
	// AddRoot registers a directory scanned for option bundles. Roots added
	// first take precedence for bundles of the same name.
	AddRoot(dir string)
	// Available returns every bundle of the given kind in a stable order.
	Available(kind domain.OptionKind) ([]*domain.OptionBundle, error)
	// Lookup returns the named bundle of the given kind.
	Lookup(kind domain.OptionKind, name string) (*domain.OptionBundle, error)
}
