package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nativeimage/internal/core/ports"
)

// NodeID is the unique identifier for the host Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.Host]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Host, error) {
			return New(), nil
		},
	})
}
