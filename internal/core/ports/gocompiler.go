package ports

import "context"

// GoCompileSpec is the input to one Go compiler invocation.
type GoCompileSpec struct {
	// GoBinary is the go binary providing the compile tool.
	GoBinary string

	// ImportPath is the import path the object is compiled as.
	ImportPath string

	// GoFiles are the Go sources to compile (absolute paths), the generated
	// stubs plus any of the package's own non-cgo files needed for symbol
	// resolution.
	GoFiles []string

	// DepArchives maps dependency import paths to their compiled archive
	// paths, written into the importcfg.
	DepArchives map[string]string

	// WorkDir is the sandbox directory for intermediates.
	WorkDir string

	// OutPath is where the compiled object archive is written.
	OutPath string

	// Race enables race-detector instrumentation.
	Race bool
}

// GoCompiler compiles Go source files into one object, delegating to the
// surrounding build system's Go compiler invocation contract.
//
//go:generate go run go.uber.org/mock/mockgen -source=gocompiler.go -destination=mocks/mock_gocompiler.go -package=mocks
type GoCompiler interface {
	// Compile produces the object at spec.OutPath or fails with an error
	// wrapping domain.ErrGoStubCompile.
	Compile(ctx context.Context, spec GoCompileSpec) error
}
