// Package config provides the YAML configuration and analysis loaders.
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.ConfigLoader   = (*Loader)(nil)
	_ ports.AnalysisLoader = (*Loader)(nil)
)

// Loader implements ports.ConfigLoader and ports.AnalysisLoader using YAML
// files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the build configuration from the given path. Missing build
// options fall back to the host platform with cgo enabled.
func (l *Loader) Load(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Pantsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.BuildConfig{
		Options: domain.BuildOptions{
			GOOS:             orDefault(file.Build.GOOS, runtime.GOOS),
			GOARCH:           orDefault(file.Build.GOARCH, runtime.GOARCH),
			CgoEnabled:       file.Build.Cgo == nil || *file.Build.Cgo,
			Race:             file.Build.Race,
			MinimumGoVersion: file.Build.GoVersion,
		},
		Toolchain: domain.ToolchainConfig{
			SearchPaths: file.Toolchain.SearchPaths,
			CCName:      file.Toolchain.CC,
			CXXName:     file.Toolchain.CXX,
			FortranName: file.Toolchain.Fortran,
			GoName:      file.Toolchain.Go,
		},
		ExtraFlags: flags(file.Cgo),
	}
	return cfg, nil
}

// LoadAnalysis reads a package-analysis manifest. Entries in srcs are
// partitioned by extension; an entry of unknown or misplaced kind fails the
// load so a broken manifest never reaches the compile pipeline.
func (l *Loader) LoadAnalysis(path string) (*domain.PackageAnalysis, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read analysis manifest")
	}

	var dto AnalysisDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse analysis manifest")
	}
	if dto.ImportPath == "" {
		return nil, zerr.With(domain.ErrConfiguration, "reason", "analysis manifest is missing an import path")
	}

	analysis := &domain.PackageAnalysis{
		ImportPath: dto.ImportPath,
		Name:       orDefault(dto.Name, lastSegment(dto.ImportPath)),
		DirPath:    dto.Dir,
		CgoFiles:   dto.CgoFiles,
		GoFiles:    dto.GoFiles,
		Flags:      flags(dto.Flags),
	}

	for _, f := range append(append([]string{}, dto.CgoFiles...), dto.GoFiles...) {
		if kind, err := domain.KindOf(f); err != nil || kind != domain.KindGoCgo {
			return nil, zerr.With(zerr.With(domain.ErrConfiguration, "file", f), "reason", "go file lists accept only .go files")
		}
	}

	for _, f := range dto.Srcs {
		kind, err := domain.KindOf(f)
		if err != nil {
			return nil, err
		}
		switch kind {
		case domain.KindC:
			analysis.CFiles = append(analysis.CFiles, f)
		case domain.KindCxx:
			analysis.CXXFiles = append(analysis.CXXFiles, f)
		case domain.KindObjC:
			analysis.ObjCFiles = append(analysis.ObjCFiles, f)
		case domain.KindFortran:
			analysis.FortranFiles = append(analysis.FortranFiles, f)
		case domain.KindHeader:
			analysis.HFiles = append(analysis.HFiles, f)
		case domain.KindSyso:
			analysis.SysoFiles = append(analysis.SysoFiles, f)
		default:
			return nil, zerr.With(zerr.With(domain.ErrConfiguration, "file", f), "reason", "go files belong in cgoFiles or goFiles, not srcs")
		}
	}

	return analysis, nil
}

func flags(dto FlagsDTO) domain.CgoFlags {
	return domain.CgoFlags{
		CFlags:   dto.CFlags,
		CXXFlags: dto.CXXFlags,
		FFlags:   dto.FFlags,
		LDFlags:  dto.LDFlags,
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func lastSegment(importPath string) string {
	if i := strings.LastIndex(importPath, "/"); i >= 0 {
		return importPath[i+1:]
	}
	return importPath
}
