// Package gotool shells out to the go distribution's cgo, compile and pack
// tools through the executor port.
package gotool

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CgoPreprocessor = (*Preprocessor)(nil)

// Preprocessor implements ports.CgoPreprocessor on top of `go tool cgo`.
type Preprocessor struct {
	executor ports.ProcessExecutor
	logger   ports.Logger
}

// NewPreprocessor creates a new Preprocessor.
func NewPreprocessor(executor ports.ProcessExecutor, logger ports.Logger) *Preprocessor {
	return &Preprocessor{executor: executor, logger: logger}
}

// Preprocess runs the cgo tool over spec.CgoFiles and collects the generated
// Go stubs, C glue files and optional export header from spec.ObjDir.
func (p *Preprocessor) Preprocess(ctx context.Context, spec ports.PreprocessSpec) (*ports.PreprocessResult, error) {
	res, err := p.executor.Run(ctx, domain.Process{
		Argv:        preprocessArgv(spec),
		Dir:         spec.SrcDir,
		Env:         preprocessEnv(spec.LDFlags),
		Description: "cgo " + spec.ImportPath,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to run the cgo tool")
	}
	if !res.Success() {
		failure := zerr.With(zerr.With(domain.ErrPreprocess, "import_path", spec.ImportPath), "exit_code", res.ExitCode)
		return nil, zerr.With(failure, "stderr", res.StderrString())
	}

	out := &ports.PreprocessResult{
		GoFiles: []string{filepath.Join(spec.ObjDir, "_cgo_gotypes.go")},
		CFiles:  []string{filepath.Join(spec.ObjDir, "_cgo_export.c")},
	}
	for _, src := range spec.CgoFiles {
		stem := strings.TrimSuffix(filepath.Base(src), ".go")
		out.GoFiles = append(out.GoFiles, filepath.Join(spec.ObjDir, stem+".cgo1.go"))
		out.CFiles = append(out.CFiles, filepath.Join(spec.ObjDir, stem+".cgo2.c"))
	}

	header := filepath.Join(spec.ObjDir, "_cgo_export.h")
	if _, err := os.Stat(header); err == nil {
		out.ExportHeader = header
	}

	out.DiscoveredFlags, err = readFlagsManifest(filepath.Join(spec.ObjDir, "_cgo_flags"))
	if err != nil {
		p.logger.Warn("ignoring unreadable _cgo_flags manifest: " + err.Error())
	}
	return out, nil
}

func preprocessArgv(spec ports.PreprocessSpec) []string {
	argv := []string{goBinary(spec.GoBinary), "tool", "cgo",
		"-objdir", spec.ObjDir,
		"-importpath", spec.ImportPath,
		"-srcdir", spec.SrcDir,
		"--",
	}
	argv = append(argv, spec.CFlags...)
	return append(argv, spec.CgoFiles...)
}

// preprocessEnv returns the extra environment entries for the cgo tool, on
// top of the host environment the executor already supplies. Each linker flag
// is quoted individually so flags containing spaces survive the tool's
// environment-variable splitting.
func preprocessEnv(ldflags []string) []string {
	if len(ldflags) == 0 {
		return nil
	}
	quoted := make([]string, len(ldflags))
	for i, f := range ldflags {
		quoted[i] = strconv.Quote(f)
	}
	return []string{"CGO_LDFLAGS=" + strings.Join(quoted, " ")}
}

// readFlagsManifest parses the tool's _cgo_flags file, KEY=VALUE per line.
// The manifest is optional and best effort; a missing file yields zero flags.
func readFlagsManifest(path string) (domain.CgoFlags, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path stays inside the sandbox objdir
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CgoFlags{}, nil
		}
		return domain.CgoFlags{}, err
	}

	var flags domain.CgoFlags
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch strings.TrimPrefix(key, "_") {
		case "CGO_CFLAGS":
			flags.CFlags = append(flags.CFlags, strings.Fields(value)...)
		case "CGO_CXXFLAGS":
			flags.CXXFlags = append(flags.CXXFlags, strings.Fields(value)...)
		case "CGO_FFLAGS":
			flags.FFlags = append(flags.FFlags, strings.Fields(value)...)
		case "CGO_LDFLAGS":
			flags.LDFlags = append(flags.LDFlags, strings.Fields(value)...)
		}
	}
	return flags, nil
}

func goBinary(configured string) string {
	if configured != "" {
		return configured
	}
	return "go"
}
