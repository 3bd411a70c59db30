package cgo_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/0xg0nz0/pants/internal/adapters/telemetry"
	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/0xg0nz0/pants/internal/core/ports/mocks"
	"github.com/0xg0nz0/pants/internal/engine/cgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	executor     *mocks.MockProcessExecutor
	preprocessor *mocks.MockCgoPreprocessor
	goCompiler   *mocks.MockGoCompiler
	archiver     *mocks.MockArchiver
	store        *mocks.MockSnapshotStore
	locator      *mocks.MockToolchainLocator
	compiler     *cgo.Compiler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		executor:     mocks.NewMockProcessExecutor(ctrl),
		preprocessor: mocks.NewMockCgoPreprocessor(ctrl),
		goCompiler:   mocks.NewMockGoCompiler(ctrl),
		archiver:     mocks.NewMockArchiver(ctrl),
		store:        mocks.NewMockSnapshotStore(ctrl),
		locator:      mocks.NewMockToolchainLocator(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	h.compiler = cgo.NewCompiler(
		h.executor, h.preprocessor, h.goCompiler, h.archiver,
		h.store, h.locator, log, telemetry.NewNoOp(),
	)
	return h
}

func defaultToolchain() *domain.ToolchainSpec {
	return &domain.ToolchainSpec{
		CC:      "/usr/bin/gcc",
		CXX:     "/usr/bin/g++",
		Fortran: "/usr/bin/gfortran",
		Go:      "/usr/bin/go",
	}
}

func pngRequest() *domain.CompileRequest {
	return &domain.CompileRequest{
		ImportPath: domain.NewInternedString("example.com/png"),
		PkgName:    domain.NewInternedString("png"),
		Digest:     domain.Digest("abc123"),
		DirPath:    "src/png",
		CgoFiles:   []string{"png.go"},
		GoFiles:    []string{"doc.go"},
		CFiles:     []string{"fast.c", "slow.c"},
		CXXFiles:   []string{"filter.cc"},
		HFiles:     []string{"png.h"},
		SysoFiles:  []string{"pre.syso"},
		Flags: domain.CgoFlags{
			CFlags:  []string{"-DPNG"},
			LDFlags: []string{"-lpng"},
		},
	}
}

func linuxConfig() *domain.BuildConfig {
	return &domain.BuildConfig{
		Options: domain.BuildOptions{GOOS: "linux", GOARCH: "amd64", CgoEnabled: true},
		ExtraFlags: domain.CgoFlags{
			LDFlags: []string{"-lm"},
		},
	}
}

// stubPreprocess writes the generated files the orchestrator later stages and
// returns the matching result.
func stubPreprocess(t *testing.T, spec ports.PreprocessSpec) *ports.PreprocessResult {
	t.Helper()
	gotypes := filepath.Join(spec.ObjDir, "_cgo_gotypes.go")
	stub := filepath.Join(spec.ObjDir, "png.cgo1.go")
	header := filepath.Join(spec.ObjDir, "_cgo_export.h")
	for _, f := range []string{gotypes, stub, header} {
		require.NoError(t, os.WriteFile(f, []byte("// generated"), 0o600))
	}
	return &ports.PreprocessResult{
		GoFiles:      []string{gotypes, stub},
		CFiles:       []string{filepath.Join(spec.ObjDir, "_cgo_export.c"), filepath.Join(spec.ObjDir, "png.cgo2.c")},
		ExportHeader: header,
		DiscoveredFlags: domain.CgoFlags{
			LDFlags: []string{"-lz"},
		},
	}
}

func TestCompiler_Compile(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()

	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(defaultToolchain(), nil)
	h.store.EXPECT().Materialize(req.Digest, gomock.Any()).Return(nil)

	h.preprocessor.EXPECT().
		Preprocess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.PreprocessSpec) (*ports.PreprocessResult, error) {
			assert.Equal(t, "/usr/bin/go", spec.GoBinary)
			assert.Equal(t, []string{"png.go"}, spec.CgoFiles)
			assert.Equal(t, []string{"-DPNG"}, spec.CFlags)
			assert.Equal(t, []string{"-lpng", "-lm"}, spec.LDFlags)
			return stubPreprocess(t, spec), nil
		})

	var mu sync.Mutex
	var nativeSrcs []string
	h.executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Process) (*domain.ProcessResult, error) {
			src := p.Argv[len(p.Argv)-1]
			// Sources always compile by relative path; the sandbox prefix in
			// the argv would leak into the produced objects.
			assert.False(t, filepath.IsAbs(src), "absolute source path %s", src)
			mu.Lock()
			nativeSrcs = append(nativeSrcs, src)
			mu.Unlock()
			return &domain.ProcessResult{ExitCode: 0}, nil
		}).
		Times(5)

	h.goCompiler.EXPECT().
		Compile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.GoCompileSpec) error {
			assert.Equal(t, "example.com/png", spec.ImportPath)
			require.Len(t, spec.GoFiles, 3)
			assert.Equal(t, "_cgo_gotypes.go", filepath.Base(spec.GoFiles[0]))
			assert.Equal(t, "png.cgo1.go", filepath.Base(spec.GoFiles[1]))
			assert.Equal(t, "doc.go", filepath.Base(spec.GoFiles[2]))
			return nil
		})

	var archived ports.ArchiveSpec
	h.archiver.EXPECT().
		Archive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.ArchiveSpec) error {
			archived = spec
			return nil
		})

	h.store.EXPECT().
		Snapshot(gomock.Any()).
		DoAndReturn(func(outDir string) (domain.Digest, error) {
			for _, f := range []string{"_cgo_export.h", "_cgo_gotypes.go", "png.cgo1.go"} {
				assert.FileExists(t, filepath.Join(outDir, f))
			}
			return domain.Digest("out456"), nil
		})

	result, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.NoError(t, err)

	// Two user C files, one C++ file and the generated glue: export glue plus
	// one per cgo file.
	assert.Len(t, nativeSrcs, 5)
	joined := strings.Join(nativeSrcs, " ")
	assert.Contains(t, joined, "fast.c")
	assert.Contains(t, joined, "slow.c")
	assert.Contains(t, joined, "filter.cc")
	assert.Contains(t, joined, "_cgo_export.c")
	assert.Contains(t, joined, "png.cgo2.c")

	assert.Equal(t, domain.ArchiveRelPath, filepath.Base(archived.OutPath))
	// 5 native objects, the Go stub object and the prebuilt syso.
	require.Len(t, archived.Objects, 7)
	bases := make([]string, len(archived.Objects))
	for i, obj := range archived.Objects {
		bases[i] = filepath.Base(obj)
	}
	assert.IsIncreasing(t, bases)
	assert.Contains(t, bases, "_go_.o")
	assert.Contains(t, bases, "pre.syso")

	assert.Equal(t, domain.Digest("out456"), result.Digest)
	assert.Equal(t, domain.ArchiveRelPath, result.ArchivePath)
	assert.Equal(t, domain.ExportHeaderRelPath, result.ExportHeaderPath)
	assert.Equal(t, []string{"_cgo_gotypes.go", "png.cgo1.go"}, result.GeneratedGoFiles)
	assert.Equal(t, []string{"-lpng", "-lm", "-lz"}, result.LinkerFlags)
}

func TestCompiler_Compile_RejectsNonCgoRequest(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()
	req.CgoFiles = nil
	req.CFiles = nil
	req.CXXFiles = nil

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompiler_Compile_RejectsDisabledCgo(t *testing.T) {
	h := newHarness(t)
	cfg := linuxConfig()
	cfg.Options.CgoEnabled = false

	_, err := h.compiler.Compile(context.Background(), pngRequest(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompiler_Compile_RejectsObjCOffDarwin(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()
	req.ObjCFiles = []string{"blend.m"}

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompiler_Compile_RejectsMissingDigest(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()
	req.Digest = ""

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompiler_Compile_RejectsEscapingHeader(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()
	req.HFiles = []string{"png.h", "../evil.h"}

	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(defaultToolchain(), nil)
	h.store.EXPECT().Materialize(req.Digest, gomock.Any()).Return(nil)
	h.preprocessor.EXPECT().
		Preprocess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.PreprocessSpec) (*ports.PreprocessResult, error) {
			return stubPreprocess(t, spec), nil
		})

	// No native compile is dispatched for a malformed header set.
	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompiler_Compile_FortranWithoutCompiler(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()
	req.FortranFiles = []string{"solve.f90"}

	toolchain := defaultToolchain()
	toolchain.Fortran = ""
	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(toolchain, nil)

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestCompiler_Compile_PreprocessFailureStopsPipeline(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()

	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(defaultToolchain(), nil)
	h.store.EXPECT().Materialize(req.Digest, gomock.Any()).Return(nil)
	h.preprocessor.EXPECT().
		Preprocess(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrPreprocess)

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreprocess)
}

func TestCompiler_Compile_NativeFailureSkipsArchive(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()

	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(defaultToolchain(), nil)
	h.store.EXPECT().Materialize(req.Digest, gomock.Any()).Return(nil)
	h.preprocessor.EXPECT().
		Preprocess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.PreprocessSpec) (*ports.PreprocessResult, error) {
			return stubPreprocess(t, spec), nil
		})

	h.executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Process) (*domain.ProcessResult, error) {
			if filepath.Base(p.Argv[len(p.Argv)-1]) == "filter.cc" {
				return &domain.ProcessResult{ExitCode: 1, Stderr: []byte("filter.cc:3: expected ';'")}, nil
			}
			return &domain.ProcessResult{ExitCode: 0}, nil
		}).
		AnyTimes()
	h.goCompiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNativeCompile)
}

func TestCompiler_Compile_GoStubFailureSkipsArchive(t *testing.T) {
	h := newHarness(t)
	req := pngRequest()

	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(defaultToolchain(), nil)
	h.store.EXPECT().Materialize(req.Digest, gomock.Any()).Return(nil)
	h.preprocessor.EXPECT().
		Preprocess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.PreprocessSpec) (*ports.PreprocessResult, error) {
			return stubPreprocess(t, spec), nil
		})

	h.executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&domain.ProcessResult{ExitCode: 0}, nil).
		AnyTimes()
	h.goCompiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.ErrGoStubCompile)

	_, err := h.compiler.Compile(context.Background(), req, linuxConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGoStubCompile)
}
