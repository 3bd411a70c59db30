package gotool_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xg0nz0/pants/internal/adapters/gotool"
	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/0xg0nz0/pants/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func success() *domain.ProcessResult {
	return &domain.ProcessResult{ExitCode: 0}
}

func failure(code int, stderr string) *domain.ProcessResult {
	return &domain.ProcessResult{ExitCode: code, Stderr: []byte(stderr)}
}

func TestPreprocessor_Preprocess(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	objDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(objDir, "_cgo_export.h"), []byte("/* exports */"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(objDir, "_cgo_flags"), []byte("_CGO_LDFLAGS=-lpng -lz\n"), 0o600))

	var captured domain.Process
	executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Process) (*domain.ProcessResult, error) {
			captured = p
			return success(), nil
		})

	res, err := gotool.NewPreprocessor(executor, log).Preprocess(context.Background(), ports.PreprocessSpec{
		GoBinary:   "/opt/go/bin/go",
		SrcDir:     "/sandbox/pkg",
		ObjDir:     objDir,
		ImportPath: "example.com/png",
		CgoFiles:   []string{"png.go", "zlib.go"},
		CFlags:     []string{"-I/usr/include/png", "-DNDEBUG"},
		LDFlags:    []string{"-L/opt/lib", "-lpng"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/opt/go/bin/go", "tool", "cgo",
		"-objdir", objDir,
		"-importpath", "example.com/png",
		"-srcdir", "/sandbox/pkg",
		"--",
		"-I/usr/include/png", "-DNDEBUG",
		"png.go", "zlib.go",
	}, captured.Argv)
	assert.Equal(t, "/sandbox/pkg", captured.Dir)
	// Only the extra entry: the executor supplies the host environment itself.
	assert.Equal(t, []string{`CGO_LDFLAGS="-L/opt/lib" "-lpng"`}, captured.Env)

	assert.Equal(t, []string{
		filepath.Join(objDir, "_cgo_gotypes.go"),
		filepath.Join(objDir, "png.cgo1.go"),
		filepath.Join(objDir, "zlib.cgo1.go"),
	}, res.GoFiles)
	assert.Equal(t, []string{
		filepath.Join(objDir, "_cgo_export.c"),
		filepath.Join(objDir, "png.cgo2.c"),
		filepath.Join(objDir, "zlib.cgo2.c"),
	}, res.CFiles)
	assert.Equal(t, filepath.Join(objDir, "_cgo_export.h"), res.ExportHeader)
	assert.Equal(t, []string{"-lpng", "-lz"}, res.DiscoveredFlags.LDFlags)
}

func TestPreprocessor_Preprocess_NoExportsNoManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success(), nil)

	res, err := gotool.NewPreprocessor(executor, log).Preprocess(context.Background(), ports.PreprocessSpec{
		SrcDir:     "/sandbox/pkg",
		ObjDir:     t.TempDir(),
		ImportPath: "example.com/plain",
		CgoFiles:   []string{"plain.go"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.ExportHeader)
	assert.Zero(t, res.DiscoveredFlags)
}

func TestPreprocessor_Preprocess_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(failure(2, "png.go:10: C.missing undefined"), nil)

	_, err := gotool.NewPreprocessor(executor, log).Preprocess(context.Background(), ports.PreprocessSpec{
		SrcDir:     "/sandbox/pkg",
		ObjDir:     t.TempDir(),
		ImportPath: "example.com/png",
		CgoFiles:   []string{"png.go"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreprocess)
}

func TestCompiler_Compile(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)

	workDir := t.TempDir()

	var captured domain.Process
	executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Process) (*domain.ProcessResult, error) {
			captured = p
			return success(), nil
		})

	err := gotool.NewCompiler(executor).Compile(context.Background(), ports.GoCompileSpec{
		GoBinary:   "go",
		ImportPath: "example.com/png",
		GoFiles:    []string{"/obj/_cgo_gotypes.go", "/obj/png.cgo1.go"},
		DepArchives: map[string]string{
			"example.com/zlib": "/deps/zlib.a",
			"example.com/base": "/deps/base.a",
		},
		WorkDir: workDir,
		OutPath: filepath.Join(workDir, "_go_.o"),
		Race:    true,
	})
	require.NoError(t, err)

	cfgPath := filepath.Join(workDir, "importcfg")
	assert.Equal(t, []string{
		"go", "tool", "compile",
		"-p", "example.com/png",
		"-importcfg", cfgPath,
		"-pack",
		"-race",
		"-o", filepath.Join(workDir, "_go_.o"),
		"/obj/_cgo_gotypes.go", "/obj/png.cgo1.go",
	}, captured.Argv)

	cfg, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "packagefile example.com/base=/deps/base.a\npackagefile example.com/zlib=/deps/zlib.a\n", string(cfg))
}

func TestCompiler_Compile_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(failure(2, "undefined: C.thing"), nil)

	err := gotool.NewCompiler(executor).Compile(context.Background(), ports.GoCompileSpec{
		ImportPath: "example.com/png",
		GoFiles:    []string{"/obj/_cgo_gotypes.go"},
		WorkDir:    t.TempDir(),
		OutPath:    "/obj/_go_.o",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGoStubCompile)
}

func TestArchiver_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)

	var captured domain.Process
	executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Process) (*domain.ProcessResult, error) {
			captured = p
			return success(), nil
		})

	err := gotool.NewArchiver(executor).Archive(context.Background(), ports.ArchiveSpec{
		GoBinary: "go",
		OutPath:  "/out/_all.a",
		Objects:  []string{"/obj/_go_.o", "/obj/png.o"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "tool", "pack", "r", "/out/_all.a", "/obj/_go_.o", "/obj/png.o"}, captured.Argv)
}

func TestArchiver_Archive_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockProcessExecutor(ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(failure(1, "pack: corrupt object"), nil)

	err := gotool.NewArchiver(executor).Archive(context.Background(), ports.ArchiveSpec{
		OutPath: "/out/_all.a",
		Objects: []string{"/obj/broken.o"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssembly)
}
