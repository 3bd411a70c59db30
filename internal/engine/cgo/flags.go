package cgo

import (
	"path/filepath"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"go.trai.ch/zerr"
)

// srcDirToken is the placeholder #cgo directives use for the absolute package
// directory.
const srcDirToken = "${SRCDIR}"

// argOptions are flag options whose following or attached value must be
// non-empty for the compiler invocation to make sense.
var argOptions = map[string]bool{
	"-I":         true,
	"-iquote":    true,
	"-isystem":   true,
	"-include":   true,
	"-L":         true,
	"-l":         true,
	"-D":         true,
	"-U":         true,
	"-o":         true,
	"-framework": true,
}

// ResolveFlags produces the final ordered flag lists per category: directive
// flags in source order first, then the user-configured extras appended, with
// ${SRCDIR} substituted once per flag. Reordering would silently change
// compilation semantics, so both inputs keep their relative order untouched.
// Substituted paths may step outside the package directory, e.g. to an
// embedded static archive staged next to the package, but never outside the
// sandbox rooted at rootDir.
func ResolveFlags(directive, extra domain.CgoFlags, srcDir, rootDir string) (domain.CgoFlags, error) {
	var out domain.CgoFlags
	var err error

	if out.CFlags, err = resolveCategory("CFLAGS", directive.CFlags, extra.CFlags, srcDir, rootDir); err != nil {
		return domain.CgoFlags{}, err
	}
	if out.CXXFlags, err = resolveCategory("CXXFLAGS", directive.CXXFlags, extra.CXXFlags, srcDir, rootDir); err != nil {
		return domain.CgoFlags{}, err
	}
	if out.FFlags, err = resolveCategory("FFLAGS", directive.FFlags, extra.FFlags, srcDir, rootDir); err != nil {
		return domain.CgoFlags{}, err
	}
	if out.LDFlags, err = resolveCategory("LDFLAGS", directive.LDFlags, extra.LDFlags, srcDir, rootDir); err != nil {
		return domain.CgoFlags{}, err
	}
	return out, nil
}

func resolveCategory(category string, directive, extra []string, srcDir, rootDir string) ([]string, error) {
	merged := make([]string, 0, len(directive)+len(extra))
	merged = append(merged, directive...)
	merged = append(merged, extra...)

	out := make([]string, 0, len(merged))
	for _, flag := range merged {
		substituted, err := substituteSrcDir(flag, srcDir, rootDir)
		if err != nil {
			return nil, zerr.With(err, "category", category)
		}
		out = append(out, substituted)
	}

	if err := validateArgs(category, out); err != nil {
		return nil, err
	}
	return out, nil
}

// substituteSrcDir performs the single textual ${SRCDIR} replacement and
// rejects values whose cleaned path escapes the sandbox root.
func substituteSrcDir(flag, srcDir, rootDir string) (string, error) {
	if !strings.Contains(flag, srcDirToken) {
		return flag, nil
	}

	out := strings.ReplaceAll(flag, srcDirToken, srcDir)

	idx := strings.Index(out, srcDir)
	cleaned := filepath.Clean(out[idx:])
	if cleaned != rootDir && !strings.HasPrefix(cleaned, rootDir+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrConfiguration, "flag", flag), "reason", "path escapes compile sandbox")
	}
	return out, nil
}

// validateArgs rejects option flags left without a usable argument, e.g. a
// bare trailing -I or an empty value in the following position.
func validateArgs(category string, flags []string) error {
	for i, flag := range flags {
		if flag == "" {
			return zerr.With(zerr.With(domain.ErrConfiguration, "category", category), "reason", "empty flag")
		}
		if !argOptions[flag] {
			continue
		}
		if i+1 >= len(flags) || flags[i+1] == "" {
			return zerr.With(zerr.With(domain.ErrConfiguration, "category", category), "flag", flag)
		}
	}
	return nil
}

// MergeDiscovered appends flags the cgo tool echoed back after preprocessing.
// Discovered flags are strictly additive: they never replace or reorder the
// resolved ones, and duplicates are left alone since compilers tolerate them.
func MergeDiscovered(resolved, discovered domain.CgoFlags) domain.CgoFlags {
	out := resolved.Clone()
	out.CFlags = append(out.CFlags, discovered.CFlags...)
	out.CXXFlags = append(out.CXXFlags, discovered.CXXFlags...)
	out.FFlags = append(out.FFlags, discovered.FFlags...)
	out.LDFlags = append(out.LDFlags, discovered.LDFlags...)
	return out
}
