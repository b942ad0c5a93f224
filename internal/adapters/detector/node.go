package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyprune/internal/core/ports"
)

// NodeID is the unique identifier for the environment probe Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentProbe, error) {
			return New(), nil
		},
	})
}
