package domain

// BuildConfig is the full user configuration loaded from pants.yaml.
type BuildConfig struct {
	// Options are the cross-cutting build options.
	Options BuildOptions

	// Toolchain configures native compiler discovery.
	Toolchain ToolchainConfig

	// ExtraFlags are the global user-level flags appended after directive
	// flags during resolution, never prepended.
	ExtraFlags CgoFlags
}

// PackageAnalysis is the upstream analyzer's classification of one package:
// file lists partitioned by kind plus the flags its #cgo directives declare.
// This subsystem consumes the analysis; it never parses Go source itself.
type PackageAnalysis struct {
	ImportPath   string
	Name         string
	DirPath      string
	CgoFiles     []string
	GoFiles      []string
	CFiles       []string
	CXXFiles     []string
	ObjCFiles    []string
	FortranFiles []string
	HFiles       []string
	SysoFiles    []string
	Flags        CgoFlags
}

// Request combines the analysis with a snapshot digest into a CompileRequest.
func (a *PackageAnalysis) Request(digest Digest) CompileRequest {
	return CompileRequest{
		ImportPath:   NewInternedString(a.ImportPath),
		PkgName:      NewInternedString(a.Name),
		Digest:       digest,
		DirPath:      a.DirPath,
		CgoFiles:     a.CgoFiles,
		GoFiles:      a.GoFiles,
		CFiles:       a.CFiles,
		CXXFiles:     a.CXXFiles,
		ObjCFiles:    a.ObjCFiles,
		FortranFiles: a.FortranFiles,
		HFiles:       a.HFiles,
		SysoFiles:    a.SysoFiles,
		Flags:        a.Flags,
	}
}
