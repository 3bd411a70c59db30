package gotool

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GoCompiler = (*Compiler)(nil)

// Compiler implements ports.GoCompiler on top of `go tool compile`.
type Compiler struct {
	executor ports.ProcessExecutor
}

// NewCompiler creates a new Compiler.
func NewCompiler(executor ports.ProcessExecutor) *Compiler {
	return &Compiler{executor: executor}
}

// Compile builds spec.GoFiles into the object at spec.OutPath. Dependency
// archives are made visible to the compiler through a generated importcfg.
func (c *Compiler) Compile(ctx context.Context, spec ports.GoCompileSpec) error {
	cfgPath := filepath.Join(spec.WorkDir, "importcfg")
	if err := os.WriteFile(cfgPath, importcfg(spec.DepArchives), 0o600); err != nil {
		return zerr.Wrap(err, "failed to write importcfg")
	}

	res, err := c.executor.Run(ctx, domain.Process{
		Argv:        compileArgv(spec, cfgPath),
		Dir:         spec.WorkDir,
		Description: "compile " + spec.ImportPath,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to run the compile tool")
	}
	if !res.Success() {
		failure := zerr.With(zerr.With(domain.ErrGoStubCompile, "import_path", spec.ImportPath), "exit_code", res.ExitCode)
		return zerr.With(failure, "stderr", res.StderrString())
	}
	return nil
}

func compileArgv(spec ports.GoCompileSpec, cfgPath string) []string {
	argv := []string{goBinary(spec.GoBinary), "tool", "compile",
		"-p", spec.ImportPath,
		"-importcfg", cfgPath,
		"-pack",
	}
	if spec.Race {
		argv = append(argv, "-race")
	}
	argv = append(argv, "-o", spec.OutPath)
	return append(argv, spec.GoFiles...)
}

// importcfg renders the dependency map in the compiler's packagefile format,
// sorted so the file content is reproducible.
func importcfg(deps map[string]string) []byte {
	paths := make([]string, 0, len(deps))
	for importPath := range deps {
		paths = append(paths, importPath)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, importPath := range paths {
		b.WriteString("packagefile ")
		b.WriteString(importPath)
		b.WriteString("=")
		b.WriteString(deps[importPath])
		b.WriteString("\n")
	}
	return []byte(b.String())
}
