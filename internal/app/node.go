package app

import (
	"context"

	"github.com/0xg0nz0/pants/internal/adapters/cas"
	"github.com/0xg0nz0/pants/internal/adapters/config"
	"github.com/0xg0nz0/pants/internal/adapters/logger"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/0xg0nz0/pants/internal/engine/cgo"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.AnalysisNodeID,
			cas.NodeID,
			cgo.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			analysisLoader, err := graft.Dep[ports.AnalysisLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[*cgo.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(configLoader, analysisLoader, store, compiler, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: telemetry,
			}, nil
		},
	})
}
