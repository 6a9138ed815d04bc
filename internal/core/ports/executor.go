package ports

import (
	"context"

	"go.trai.ch/nativeimage/internal/core/domain"
)

// Executor defines the interface for running the image builder.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command described by d with inherited standard streams
	// and blocks until it exits.
	//
	// A non-zero exit status is reported as an error carrying the status.
	Execute(ctx context.Context, d *domain.InvocationDescriptor) error
}
