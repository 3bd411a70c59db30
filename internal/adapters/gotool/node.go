package gotool

import (
	"context"

	"github.com/0xg0nz0/pants/internal/adapters/logger"
	"github.com/0xg0nz0/pants/internal/adapters/shell"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/grindlemire/graft"
)

// Node identifiers for the go tool adapters.
const (
	PreprocessorNodeID graft.ID = "adapter.cgo_preprocessor"
	CompilerNodeID     graft.ID = "adapter.go_compiler"
	ArchiverNodeID     graft.ID = "adapter.archiver"
)

func init() {
	graft.Register(graft.Node[ports.CgoPreprocessor]{
		ID:        PreprocessorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CgoPreprocessor, error) {
			executor, err := graft.Dep[ports.ProcessExecutor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPreprocessor(executor, log), nil
		},
	})

	graft.Register(graft.Node[ports.GoCompiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.GoCompiler, error) {
			executor, err := graft.Dep[ports.ProcessExecutor](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(executor), nil
		},
	})

	graft.Register(graft.Node[ports.Archiver]{
		ID:        ArchiverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			executor, err := graft.Dep[ports.ProcessExecutor](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(executor), nil
		},
	})
}
