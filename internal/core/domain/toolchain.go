package domain

// ToolchainConfig is the user-facing toolchain configuration: where to look
// for native compilers and what they are called.
type ToolchainConfig struct {
	// SearchPaths are the directories searched in order for every binary.
	// Empty means the environment PATH.
	SearchPaths []string

	// CCName, CXXName and FortranName override the compiler binary names.
	// Defaults fall back from gcc/g++/gfortran to their clang equivalents.
	CCName      string
	CXXName     string
	FortranName string

	// GoName overrides the go binary name used for the cgo tool, the Go
	// compiler, and the archiver.
	GoName string
}

// ToolchainSpec holds the resolved absolute binary path per compiler family.
// It is produced once by the toolchain locator and treated as read-only
// configuration for the duration of one compile.
type ToolchainSpec struct {
	// CC is the C compiler, also used for Objective-C sources.
	CC string

	// CXX is the C++ compiler.
	CXX string

	// Fortran is the Fortran compiler. Empty when no Fortran binary was
	// requested or found; only an error if the request carries Fortran files.
	Fortran string

	// Go is the go binary providing `go tool cgo`, `go tool compile` and
	// `go tool pack`.
	Go string
}

// CompilerFor returns the compiler binary for a native file kind. The bool is
// false when the spec has no binary for that kind.
func (t ToolchainSpec) CompilerFor(kind FileKind) (string, bool) {
	switch kind {
	case KindC, KindObjC:
		return t.CC, t.CC != ""
	case KindCxx:
		return t.CXX, t.CXX != ""
	case KindFortran:
		return t.Fortran, t.Fortran != ""
	default:
		return "", false
	}
}
