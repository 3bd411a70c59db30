// Package cgo implements the cgo compilation orchestrator: it turns one
// package's cgo sources into a single static archive by coordinating the cgo
// preprocessor, the native toolchains, the Go compiler and the archiver.
package cgo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Compiler is the orchestrator behind the subsystem's sole public operation.
// All collaborators are injected; nothing here reaches for global state, which
// keeps concurrent requests isolated by construction.
type Compiler struct {
	executor     ports.ProcessExecutor
	preprocessor ports.CgoPreprocessor
	goCompiler   ports.GoCompiler
	archiver     ports.Archiver
	store        ports.SnapshotStore
	locator      ports.ToolchainLocator
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// NewCompiler creates a Compiler with the given collaborators.
func NewCompiler(
	executor ports.ProcessExecutor,
	preprocessor ports.CgoPreprocessor,
	goCompiler ports.GoCompiler,
	archiver ports.Archiver,
	store ports.SnapshotStore,
	locator ports.ToolchainLocator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Compiler {
	return &Compiler{
		executor:     executor,
		preprocessor: preprocessor,
		goCompiler:   goCompiler,
		archiver:     archiver,
		store:        store,
		locator:      locator,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Compile runs the full pipeline for one request. On any failure the request
// fails as a whole; no partial archive is ever returned. The mapping from
// request to result is a pure function of the input tree, the flags and the
// toolchain identity, so results are safe to cache by content address.
func (c *Compiler) Compile(ctx context.Context, req *domain.CompileRequest, cfg *domain.BuildConfig) (*domain.CompileResult, error) {
	if err := validateRequest(req, cfg); err != nil {
		return nil, err
	}

	toolchain, err := c.locator.Locate(ctx, cfg.Toolchain)
	if err != nil {
		return nil, err
	}
	if len(req.FortranFiles) > 0 && toolchain.Fortran == "" {
		return nil, zerr.With(domain.ErrToolNotFound, "tool", "fortran compiler")
	}

	sandbox, err := os.MkdirTemp("", "cgo-compile-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create compile sandbox")
	}
	defer os.RemoveAll(sandbox) //nolint:errcheck // Best effort cleanup

	if err := c.store.Materialize(req.Digest, sandbox); err != nil {
		return nil, zerr.Wrap(err, "failed to materialize input tree")
	}

	srcDir := filepath.Join(sandbox, req.DirPath)
	objDir := filepath.Join(sandbox, "__obj__")
	outDir := filepath.Join(sandbox, "__out__")
	for _, dir := range []string{objDir, outDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.Wrap(err, "failed to create sandbox directory")
		}
	}

	flags, err := ResolveFlags(req.Flags, cfg.ExtraFlags, srcDir, sandbox)
	if err != nil {
		return nil, err
	}

	pre, err := c.preprocess(ctx, req, toolchain, flags, srcDir, objDir)
	if err != nil {
		return nil, err
	}
	flags = MergeDiscovered(flags, pre.DiscoveredFlags)

	goObj := filepath.Join(objDir, "_go_.o")
	jobs := nativeJobs(req, pre.CFiles, srcDir, objDir)
	includes, err := headerIncludes(objDir, srcDir, req.HFiles)
	if err != nil {
		return nil, err
	}

	if err := c.fanOut(ctx, req, toolchain, flags, jobs, includes, pre, srcDir, objDir, goObj, cfg); err != nil {
		return nil, err
	}

	objects := make([]string, 0, len(jobs)+len(req.SysoFiles)+1)
	for _, job := range jobs {
		objects = append(objects, job.Obj)
	}
	objects = append(objects, goObj)
	for _, syso := range req.SysoFiles {
		objects = append(objects, filepath.Join(srcDir, syso))
	}
	// Member order is not significant for symbol resolution but must be
	// deterministic for reproducible archives.
	sort.Slice(objects, func(i, j int) bool {
		return filepath.Base(objects[i]) < filepath.Base(objects[j])
	})

	result, err := c.assemble(ctx, req, toolchain, objects, pre, outDir, flags)
	if err != nil {
		return nil, err
	}
	c.logger.Info(fmt.Sprintf("compiled %s: %d objects packed", req.ImportPath.String(), len(objects)))
	return result, nil
}

func validateRequest(req *domain.CompileRequest, cfg *domain.BuildConfig) error {
	if !req.HasCgo() {
		return zerr.With(zerr.With(domain.ErrConfiguration, "import_path", req.ImportPath.String()), "reason", "request has no cgo inputs")
	}
	if !cfg.Options.CgoEnabled {
		return zerr.With(zerr.With(domain.ErrConfiguration, "import_path", req.ImportPath.String()), "reason", "cgo is disabled")
	}
	if len(req.ObjCFiles) > 0 && !cfg.Options.TargetsDarwin() {
		return zerr.With(zerr.With(domain.ErrConfiguration, "goos", cfg.Options.GOOS), "reason", "objective-c sources require a darwin target")
	}
	if req.Digest.IsZero() {
		return zerr.With(zerr.With(domain.ErrConfiguration, "import_path", req.ImportPath.String()), "reason", "missing input tree digest")
	}
	return nil
}

func (c *Compiler) preprocess(ctx context.Context, req *domain.CompileRequest, toolchain *domain.ToolchainSpec, flags domain.CgoFlags, srcDir, objDir string) (*ports.PreprocessResult, error) {
	ctx, vertex := c.telemetry.Record(ctx, fmt.Sprintf("cgo %s", req.ImportPath.String()))

	pre, err := c.preprocessor.Preprocess(ctx, ports.PreprocessSpec{
		GoBinary:   toolchain.Go,
		SrcDir:     srcDir,
		ObjDir:     objDir,
		ImportPath: req.ImportPath.String(),
		CgoFiles:   req.CgoFiles,
		CFlags:     flags.CFlags,
		LDFlags:    flags.LDFlags,
	})
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return pre, nil
}

// fanOut runs every native compile plus the Go stub compile concurrently.
// The first failure cancels the siblings of this request; other requests are
// unaffected since nothing here is shared.
func (c *Compiler) fanOut(
	ctx context.Context,
	req *domain.CompileRequest,
	toolchain *domain.ToolchainSpec,
	flags domain.CgoFlags,
	jobs []nativeJob,
	includes []string,
	pre *ports.PreprocessResult,
	srcDir, objDir, goObj string,
	cfg *domain.BuildConfig,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, job := range jobs {
		g.Go(func() error {
			return c.compileNative(gctx, toolchain, job, flags, includes)
		})
	}

	g.Go(func() error {
		goFiles := make([]string, 0, len(pre.GoFiles)+len(req.GoFiles))
		goFiles = append(goFiles, pre.GoFiles...)
		for _, f := range req.GoFiles {
			goFiles = append(goFiles, filepath.Join(srcDir, f))
		}

		vctx, vertex := c.telemetry.Record(gctx, fmt.Sprintf("compile %s [go stubs]", req.ImportPath.String()))
		err := c.goCompiler.Compile(vctx, ports.GoCompileSpec{
			GoBinary:   toolchain.Go,
			ImportPath: req.ImportPath.String(),
			GoFiles:    goFiles,
			WorkDir:    objDir,
			OutPath:    goObj,
			Race:       cfg.Options.Race,
		})
		vertex.Complete(err)
		return err
	})

	return g.Wait()
}

func (c *Compiler) compileNative(ctx context.Context, toolchain *domain.ToolchainSpec, job nativeJob, flags domain.CgoFlags, includes []string) error {
	argv, err := compileArgv(toolchain, job, flags, includes)
	if err != nil {
		return err
	}

	name := filepath.Base(job.Src)
	ctx, vertex := c.telemetry.Record(ctx, fmt.Sprintf("%s %s", job.Kind.String(), name))

	res, err := c.executor.Run(ctx, domain.Process{
		Argv:        argv,
		Dir:         job.Dir,
		Description: fmt.Sprintf("compile %s", name),
	})
	if err != nil {
		vertex.Complete(err)
		return zerr.With(zerr.Wrap(err, domain.ErrNativeCompile.Error()), "file", job.Src)
	}
	if !res.Success() {
		failure := zerr.With(zerr.With(domain.ErrNativeCompile, "file", job.Src), "exit_code", res.ExitCode)
		failure = zerr.With(failure, "stderr", res.StderrString())
		vertex.Complete(failure)
		return failure
	}
	vertex.Complete(nil)
	return nil
}

// assemble packs the object set into the archive and snapshots the result
// tree: the archive, the export header, and the generated Go stubs.
func (c *Compiler) assemble(ctx context.Context, req *domain.CompileRequest, toolchain *domain.ToolchainSpec, objects []string, pre *ports.PreprocessResult, outDir string, flags domain.CgoFlags) (*domain.CompileResult, error) {
	ctx, vertex := c.telemetry.Record(ctx, fmt.Sprintf("archive %s", req.ImportPath.String()))

	archivePath := filepath.Join(outDir, domain.ArchiveRelPath)
	if err := c.archiver.Archive(ctx, ports.ArchiveSpec{
		GoBinary: toolchain.Go,
		OutPath:  archivePath,
		Objects:  objects,
	}); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	result := &domain.CompileResult{
		ArchivePath: domain.ArchiveRelPath,
		LinkerFlags: flags.LDFlags,
	}

	if pre.ExportHeader != "" {
		if err := copyFile(pre.ExportHeader, filepath.Join(outDir, domain.ExportHeaderRelPath)); err != nil {
			vertex.Complete(err)
			return nil, zerr.Wrap(err, "failed to stage export header")
		}
		result.ExportHeaderPath = domain.ExportHeaderRelPath
	}

	for _, goFile := range pre.GoFiles {
		name := filepath.Base(goFile)
		if err := copyFile(goFile, filepath.Join(outDir, name)); err != nil {
			vertex.Complete(err)
			return nil, zerr.Wrap(err, "failed to stage generated go file")
		}
		result.GeneratedGoFiles = append(result.GeneratedGoFiles, name)
	}
	sort.Strings(result.GeneratedGoFiles)

	digest, err := c.store.Snapshot(outDir)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "failed to snapshot compile result")
	}
	result.Digest = digest

	vertex.Complete(nil)
	return result, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Paths stay inside the sandbox
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // Sandbox path
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
