package ports

import (
	"context"

	"github.com/0xg0nz0/pants/internal/core/domain"
)

// PreprocessSpec is the input to one cgo tool invocation.
type PreprocessSpec struct {
	// GoBinary is the go binary providing the cgo tool.
	GoBinary string

	// SrcDir is the absolute package directory inside the sandbox.
	SrcDir string

	// ObjDir is the absolute directory the tool writes generated files into.
	ObjDir string

	// ImportPath is the package import path, recorded in generated code.
	ImportPath string

	// CgoFiles are the `import "C"` files, relative to SrcDir.
	CgoFiles []string

	// CFlags are the fully resolved C flags passed through to the tool.
	CFlags []string

	// LDFlags are the fully resolved linker flags, exported to the tool via
	// the CGO_LDFLAGS environment so they end up recorded in generated code.
	LDFlags []string
}

// PreprocessResult captures the cgo tool's outputs.
type PreprocessResult struct {
	// GoFiles are the generated Go stubs (absolute paths): _cgo_gotypes.go
	// plus one *.cgo1.go per input file.
	GoFiles []string

	// CFiles are the generated C glue files (absolute paths): _cgo_export.c
	// plus one *.cgo2.c per input file.
	CFiles []string

	// ExportHeader is the absolute path of _cgo_export.h, empty when absent.
	ExportHeader string

	// DiscoveredFlags are per-file flags the tool echoed back via its
	// _cgo_flags manifest. Strictly additive; never override resolved flags.
	DiscoveredFlags domain.CgoFlags
}

// CgoPreprocessor invokes the external cgo tool over a package's cgo files.
// The concrete binary is swappable infrastructure behind this interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=preprocessor.go -destination=mocks/mock_preprocessor.go -package=mocks
type CgoPreprocessor interface {
	// Preprocess runs the tool. A non-zero tool exit surfaces as an error
	// wrapping domain.ErrPreprocess with the tool's stderr attached verbatim;
	// no partial generated files are returned.
	Preprocess(ctx context.Context, spec PreprocessSpec) (*PreprocessResult, error)
}
