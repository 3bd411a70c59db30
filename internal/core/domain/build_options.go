package domain

// BuildOptions is the cross-cutting build configuration injected read-only
// into every pipeline step.
type BuildOptions struct {
	// GOOS and GOARCH identify the compilation target.
	GOOS   string
	GOARCH string

	// CgoEnabled gates the whole subsystem. A request carrying cgo files while
	// this is false is a configuration error.
	CgoEnabled bool

	// Race enables race-detector instrumentation for the Go stub compile.
	Race bool

	// MinimumGoVersion gates which cgo tool behaviors are assumed available.
	MinimumGoVersion string
}

// TargetsDarwin reports whether the target is a Darwin-like OS, the only
// targets on which Objective-C sources are meaningful.
func (o BuildOptions) TargetsDarwin() bool {
	return o.GOOS == "darwin" || o.GOOS == "ios"
}
