package ports

import "go.trai.ch/nativeimage/internal/core/domain"

// PlanWriter defines the interface for exporting a resolved build plan.
//
//go:generate mockgen -source=plan.go -destination=mocks/mock_plan.go -package=mocks
type PlanWriter interface {
	// Write stores d at path.
	Write(path string, d *domain.InvocationDescriptor) error
}
