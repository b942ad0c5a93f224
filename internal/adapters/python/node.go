package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyprune/internal/adapters/shell"
	"go.trai.ch/pyprune/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain factory Graft node.
const NodeID graft.ID = "adapter.python.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolchainFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainFactory, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(runner), nil
		},
	})
}
