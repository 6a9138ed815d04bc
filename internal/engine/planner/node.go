package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nativeimage/internal/adapters/fs"
	"go.trai.ch/nativeimage/internal/adapters/host"
	"go.trai.ch/nativeimage/internal/adapters/logger"
	"go.trai.ch/nativeimage/internal/adapters/macro"
	"go.trai.ch/nativeimage/internal/adapters/telemetry"
	"go.trai.ch/nativeimage/internal/core/ports"
)

// NodeID is the unique identifier for the assembler Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
			fs.ResolverNodeID,
			macro.NodeID,
			host.NodeID,
		},
		Run: func(ctx context.Context) (*Assembler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.OptionRegistry](ctx)
			if err != nil {
				return nil, err
			}
			h, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(log, tracer, resolver, registry, h), nil
		},
	})
}
