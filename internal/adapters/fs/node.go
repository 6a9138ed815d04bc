package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nativeimage/internal/adapters/logger"
	"go.trai.ch/nativeimage/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	CleanerNodeID  graft.ID = "adapter.fs.cleaner"
)

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(log), nil
		},
	})
}
