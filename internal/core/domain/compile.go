// Package domain contains the core domain models for the cgo compilation pipeline.
package domain

// CgoFlags holds the per-category flag lists extracted from #cgo directives.
// Order within a category is significant (include-path search order, -D
// redefinitions) and must never be changed by any component.
type CgoFlags struct {
	CFlags   []string
	CXXFlags []string
	FFlags   []string
	LDFlags  []string
}

// Clone returns a deep copy so callers can append without aliasing the source.
func (f CgoFlags) Clone() CgoFlags {
	clone := func(s []string) []string {
		if s == nil {
			return nil
		}
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	return CgoFlags{
		CFlags:   clone(f.CFlags),
		CXXFlags: clone(f.CXXFlags),
		FFlags:   clone(f.FFlags),
		LDFlags:  clone(f.LDFlags),
	}
}

// CompileRequest identifies one Go package's cgo compilation unit.
// It is constructed once by the caller per package per build and is immutable
// thereafter. File lists come from the upstream package analysis and are
// relative to DirPath inside the input tree.
type CompileRequest struct {
	// ImportPath is the Go import path of the package being compiled.
	ImportPath InternedString

	// PkgName is the declared package name.
	PkgName InternedString

	// Digest is the content address of the immutable input file tree holding
	// all of the package's source files.
	Digest Digest

	// DirPath is the package directory inside the input tree.
	DirPath string

	// CgoFiles are the .go files containing `import "C"`.
	CgoFiles []string

	// GoFiles are the package's plain .go files, compiled together with the
	// generated stubs so the Go compiler resolves symbols consistently.
	GoFiles []string

	// CFiles, CXXFiles, ObjCFiles and FortranFiles are the native sources
	// compiled by the dispatcher, one object per file.
	CFiles       []string
	CXXFiles     []string
	ObjCFiles    []string
	FortranFiles []string

	// HFiles are headers made visible to every native compile via -iquote.
	HFiles []string

	// SysoFiles are prebuilt objects appended to the archive unmodified.
	SysoFiles []string

	// Flags are the flag lists extracted from #cgo directives, in source order.
	Flags CgoFlags
}

// NativeFileCount returns the number of native sources the dispatcher will
// compile, excluding the generated export glue file.
func (r *CompileRequest) NativeFileCount() int {
	return len(r.CFiles) + len(r.CXXFiles) + len(r.ObjCFiles) + len(r.FortranFiles)
}

// HasCgo reports whether the package actually requires cgo processing.
func (r *CompileRequest) HasCgo() bool {
	return len(r.CgoFiles) > 0 || r.NativeFileCount() > 0
}

// ArchiveRelPath is the well-known location of the assembled archive inside
// the result tree.
const ArchiveRelPath = "_all.a"

// ExportHeaderRelPath is the well-known location of the generated export
// header inside the result tree.
const ExportHeaderRelPath = "_cgo_export.h"

// CompileResult is the output of one successful compile: a content-addressed
// tree containing the assembled archive plus the ancillary generated files the
// caller needs for downstream Go compilation and linking.
type CompileResult struct {
	// Digest is the content address of the output tree.
	Digest Digest

	// ArchivePath is the archive location inside the output tree.
	// Always ArchiveRelPath; carried so callers need no constant coupling.
	ArchivePath string

	// GeneratedGoFiles are the cgo-generated Go stubs inside the output tree,
	// already compiled into the archive but exposed for tooling that wants to
	// inspect them.
	GeneratedGoFiles []string

	// ExportHeaderPath is the generated _cgo_export.h location inside the
	// output tree, empty when the package exports nothing.
	ExportHeaderPath string

	// LinkerFlags are the fully resolved LDFLAGS the downstream link step must
	// carry. The orchestrator never invokes the final link itself.
	LinkerFlags []string
}
