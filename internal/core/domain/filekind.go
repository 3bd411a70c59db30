package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// FileKind classifies a source file by the toolchain that consumes it.
type FileKind int

const (
	// KindUnknown is the zero value for unclassifiable files.
	KindUnknown FileKind = iota
	// KindGoCgo is a .go file containing `import "C"`.
	KindGoCgo
	// KindC is a C translation unit.
	KindC
	// KindCxx is a C++ translation unit.
	KindCxx
	// KindObjC is an Objective-C(++) translation unit, Darwin targets only.
	KindObjC
	// KindFortran is a Fortran translation unit.
	KindFortran
	// KindHeader is a header file, never compiled on its own.
	KindHeader
	// KindSyso is a prebuilt system object, archived as-is.
	KindSyso
)

// String returns the kind name for diagnostics.
func (k FileKind) String() string {
	switch k {
	case KindGoCgo:
		return "cgo"
	case KindC:
		return "c"
	case KindCxx:
		return "c++"
	case KindObjC:
		return "objc"
	case KindFortran:
		return "fortran"
	case KindHeader:
		return "header"
	case KindSyso:
		return "syso"
	default:
		return "unknown"
	}
}

// KindOf maps a filename to its FileKind by extension. Adding a new kind means
// one new constant and one new case here.
func KindOf(name string) (FileKind, error) {
	switch filepath.Ext(name) {
	case ".go":
		return KindGoCgo, nil
	case ".c":
		return KindC, nil
	case ".cc", ".cpp", ".cxx":
		return KindCxx, nil
	case ".m", ".mm":
		return KindObjC, nil
	case ".f", ".F", ".f90", ".for":
		return KindFortran, nil
	case ".h", ".hh", ".hpp", ".hxx":
		return KindHeader, nil
	case ".syso":
		return KindSyso, nil
	default:
		return KindUnknown, zerr.With(ErrConfiguration, "file", name)
	}
}
