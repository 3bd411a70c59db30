package cgo

import (
	"context"

	"github.com/0xg0nz0/pants/internal/adapters/cas"
	"github.com/0xg0nz0/pants/internal/adapters/gotool"
	"github.com/0xg0nz0/pants/internal/adapters/logger"
	"github.com/0xg0nz0/pants/internal/adapters/shell"
	"github.com/0xg0nz0/pants/internal/adapters/telemetry/progrock"
	"github.com/0xg0nz0/pants/internal/adapters/toolchain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the cgo compiler Graft node.
const NodeID graft.ID = "engine.cgo_compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			gotool.PreprocessorNodeID,
			gotool.CompilerNodeID,
			gotool.ArchiverNodeID,
			cas.NodeID,
			toolchain.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Compiler, error) {
			executor, err := graft.Dep[ports.ProcessExecutor](ctx)
			if err != nil {
				return nil, err
			}
			preprocessor, err := graft.Dep[ports.CgoPreprocessor](ctx)
			if err != nil {
				return nil, err
			}
			goCompiler, err := graft.Dep[ports.GoCompiler](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ToolchainLocator](ctx)
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
			return NewCompiler(executor, preprocessor, goCompiler, archiver, store, locator, log, telemetry), nil
		},
	})
}
