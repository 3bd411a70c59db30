// Package toolchain locates native compiler binaries on disk.
package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainLocator = (*Locator)(nil)

// Locator implements ports.ToolchainLocator by scanning an ordered list of
// search directories for the configured binary names.
type Locator struct {
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// Default binary names per family, tried in order. gcc-family first, clang
// fallbacks second, matching what most hosts provide.
var (
	defaultCC      = []string{"gcc", "clang"}
	defaultCXX     = []string{"g++", "clang++"}
	defaultFortran = []string{"gfortran"}
	defaultGo      = []string{"go"}
)

// Locate resolves the toolchain. The C and C++ compilers and the go binary
// are mandatory; Fortran is optional and left empty when absent since most
// packages never need it.
func (l *Locator) Locate(_ context.Context, cfg domain.ToolchainConfig) (*domain.ToolchainSpec, error) {
	paths := cfg.SearchPaths
	if len(paths) == 0 {
		paths = filepath.SplitList(os.Getenv("PATH"))
	}

	spec := &domain.ToolchainSpec{}
	var err error

	if spec.CC, err = l.find(paths, candidates(cfg.CCName, defaultCC)); err != nil {
		return nil, zerr.With(err, "family", "c")
	}
	if spec.CXX, err = l.find(paths, candidates(cfg.CXXName, defaultCXX)); err != nil {
		return nil, zerr.With(err, "family", "c++")
	}
	if spec.Go, err = l.find(paths, candidates(cfg.GoName, defaultGo)); err != nil {
		return nil, zerr.With(err, "family", "go")
	}

	if spec.Fortran, err = l.find(paths, candidates(cfg.FortranName, defaultFortran)); err != nil {
		l.logger.Warn("no fortran compiler on the search path, fortran sources will fail")
		spec.Fortran = ""
	}

	return spec, nil
}

func candidates(override string, defaults []string) []string {
	if override != "" {
		return []string{override}
	}
	return defaults
}

// find returns the first existing executable among names across the search
// directories, preferring name order over directory order so an override
// always wins.
func (l *Locator) find(paths, names []string) (string, error) {
	for _, name := range names {
		if filepath.IsAbs(name) {
			if err := isExecutable(name); err == nil {
				return name, nil
			}
			continue
		}
		for _, dir := range paths {
			if dir == "" {
				dir = "."
			}
			candidate := filepath.Join(dir, name)
			if err := isExecutable(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", zerr.With(zerr.With(domain.ErrToolNotFound, "names", strings.Join(names, ",")), "search_paths", strings.Join(paths, string(os.PathListSeparator)))
}

func isExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if m := info.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
