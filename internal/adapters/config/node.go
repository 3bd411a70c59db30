package config

import (
	"context"

	"github.com/0xg0nz0/pants/internal/adapters/logger"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/grindlemire/graft"
)

// Node identifiers for the loaders.
const (
	NodeID         graft.ID = "adapter.config_loader"
	AnalysisNodeID graft.ID = "adapter.analysis_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.AnalysisLoader]{
		ID:        AnalysisNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AnalysisLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
