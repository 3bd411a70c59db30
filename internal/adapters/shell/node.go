package shell

import (
	"context"

	"github.com/0xg0nz0/pants/internal/adapters/logger"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the process executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.ProcessExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProcessExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
