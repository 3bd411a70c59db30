package config

// Pantsfile represents the structure of the pants.yaml configuration file.
type Pantsfile struct {
	Version   string       `yaml:"version"`
	Build     BuildDTO     `yaml:"build"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Cgo       FlagsDTO     `yaml:"cgo"`
}

// BuildDTO represents the cross-cutting build options.
type BuildDTO struct {
	GOOS      string `yaml:"goos"`
	GOARCH    string `yaml:"goarch"`
	Cgo       *bool  `yaml:"cgo"`
	Race      bool   `yaml:"race"`
	GoVersion string `yaml:"goVersion"`
}

// ToolchainDTO represents native compiler discovery settings.
type ToolchainDTO struct {
	SearchPaths []string `yaml:"searchPaths"`
	CC          string   `yaml:"cc"`
	CXX         string   `yaml:"cxx"`
	Fortran     string   `yaml:"fortran"`
	Go          string   `yaml:"go"`
}

// FlagsDTO represents user-level compile and link flags.
type FlagsDTO struct {
	CFlags   []string `yaml:"cflags"`
	CXXFlags []string `yaml:"cxxflags"`
	FFlags   []string `yaml:"fflags"`
	LDFlags  []string `yaml:"ldflags"`
}

// AnalysisDTO represents a package-analysis manifest. Native sources and
// headers arrive in one list and are partitioned by extension on load; only
// the Go file split cannot be derived from names and is spelled out.
type AnalysisDTO struct {
	ImportPath string   `yaml:"importPath"`
	Name       string   `yaml:"name"`
	Dir        string   `yaml:"dir"`
	CgoFiles   []string `yaml:"cgoFiles"`
	GoFiles    []string `yaml:"goFiles"`
	Srcs       []string `yaml:"srcs"`
	Flags      FlagsDTO `yaml:"flags"`
}
