package macro

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nativeimage/internal/core/ports"
)

// NodeID is the unique identifier for the option registry Graft node.
const NodeID graft.ID = "adapter.macro_registry"

func init() {
	graft.Register(graft.Node[ports.OptionRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
