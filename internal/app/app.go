// Package app implements the application layer for pants.
package app

import (
	"context"
	"path/filepath"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/0xg0nz0/pants/internal/engine/cgo"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	analysisLoader ports.AnalysisLoader
	store          ports.SnapshotStore
	compiler       *cgo.Compiler
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	analysisLoader ports.AnalysisLoader,
	store ports.SnapshotStore,
	compiler *cgo.Compiler,
	logger ports.Logger,
) *App {
	return &App{
		configLoader:   configLoader,
		analysisLoader: analysisLoader,
		store:          store,
		compiler:       compiler,
		logger:         logger,
	}
}

// RunOptions selects the inputs and outputs of one compile run.
type RunOptions struct {
	// ConfigPath is the pants.yaml location.
	ConfigPath string

	// AnalysisPath is the package-analysis manifest location.
	AnalysisPath string

	// Root is the source root the analysis paths are relative to.
	Root string

	// OutDir, when set, receives a materialized copy of the result tree.
	OutDir string
}

// Run compiles the package described by the analysis manifest: snapshot the
// sources, run the pipeline, and optionally materialize the result tree.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.CompileResult, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	analysis, err := a.analysisLoader.LoadAnalysis(opts.AnalysisPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load package analysis")
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	digest, err := a.store.Snapshot(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to snapshot source tree")
	}

	req := analysis.Request(digest)
	result, err := a.compiler.Compile(ctx, &req, cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Info("compiled " + analysis.ImportPath + " into " + result.ArchivePath)

	if opts.OutDir != "" {
		if err := a.store.Materialize(result.Digest, opts.OutDir); err != nil {
			return nil, zerr.Wrap(err, "failed to materialize result tree")
		}
		a.logger.Info("wrote result tree to " + filepath.Clean(opts.OutDir))
	}
	return result, nil
}
