package planfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nativeimage/internal/core/ports"
)

// NodeID is the unique identifier for the plan writer Graft node.
const NodeID graft.ID = "adapter.planfile"

func init() {
	graft.Register(graft.Node[ports.PlanWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanWriter, error) {
			return NewWriter(), nil
		},
	})
}
