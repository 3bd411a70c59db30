package cgo

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// nativeJob is one native source compile: the dispatcher fans these out, one
// independent process per job.
type nativeJob struct {
	// Src is the source path relative to Dir. Compiles never receive an
	// absolute source path: the compiler records the path it was given in the
	// object file, and the sandbox prefix would make identical inputs produce
	// different bytes.
	Src string

	// Dir is the working directory for the compile, the package directory for
	// user sources and the objdir for generated glue.
	Dir string

	// Obj is the absolute object output path, distinct per job.
	Obj string

	// Kind selects the toolchain.
	Kind domain.FileKind
}

var objNameRe = regexp.MustCompile(`[/\\:]`)

// objectName mangles a source name into a flat object file name. The mangled
// name alone is ambiguous (sub/dir.c and sub_dir.c collapse), so a digest of
// the unmangled path keeps every source's object distinct.
func objectName(src string) string {
	mangled := objNameRe.ReplaceAllString(src, "_")
	return fmt.Sprintf("%s.%016x.o", mangled, xxhash.Sum64String(src))
}

// nativeJobs builds the full job list for a request: every user native source
// plus the generated C glue files from preprocessing. Job order follows
// request order; determinism of the final archive comes from sorting objects
// before assembly, not from here.
func nativeJobs(req *domain.CompileRequest, generatedC []string, srcDir, objDir string) []nativeJob {
	jobs := make([]nativeJob, 0, req.NativeFileCount()+len(generatedC))

	add := func(files []string, kind domain.FileKind) {
		for _, f := range files {
			jobs = append(jobs, nativeJob{
				Src:  f,
				Dir:  srcDir,
				Obj:  filepath.Join(objDir, objectName(f)),
				Kind: kind,
			})
		}
	}

	add(req.CFiles, domain.KindC)
	add(req.CXXFiles, domain.KindCxx)
	add(req.ObjCFiles, domain.KindObjC)
	add(req.FortranFiles, domain.KindFortran)

	for _, f := range generatedC {
		name := filepath.Base(f)
		jobs = append(jobs, nativeJob{
			Src:  name,
			Dir:  objDir,
			Obj:  filepath.Join(objDir, objectName(name)),
			Kind: domain.KindC,
		})
	}
	return jobs
}

// compileArgv builds the argument vector for one native compile: toolchain
// binary, category flags, header includes, then -c -o obj src.
func compileArgv(spec *domain.ToolchainSpec, job nativeJob, flags domain.CgoFlags, includes []string) ([]string, error) {
	compiler, ok := spec.CompilerFor(job.Kind)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrToolNotFound, "kind", job.Kind.String()), "file", job.Src)
	}

	var categoryFlags []string
	switch job.Kind {
	case domain.KindC, domain.KindObjC:
		// Objective-C has no flag category of its own; it reuses CFLAGS.
		categoryFlags = flags.CFlags
	case domain.KindCxx:
		categoryFlags = flags.CXXFlags
	case domain.KindFortran:
		categoryFlags = flags.FFlags
	}

	argv := make([]string, 0, len(categoryFlags)+len(includes)+5)
	argv = append(argv, compiler)
	argv = append(argv, categoryFlags...)
	argv = append(argv, includes...)
	argv = append(argv, "-c", "-o", job.Obj, job.Src)
	return argv, nil
}

// headerIncludes returns the -iquote arguments making the generated export
// header and the package's own headers visible to every native compile.
// Header paths in a request are relative to the package directory; one that
// climbs out of it is a malformed request, not a searchable include dir.
func headerIncludes(objDir, srcDir string, hFiles []string) ([]string, error) {
	includes := []string{"-iquote", objDir}

	seen := map[string]bool{}
	for _, h := range hFiles {
		if strings.Contains(h, "..") {
			return nil, zerr.With(zerr.With(domain.ErrConfiguration, "header", h), "reason", "header path escapes package directory")
		}
		dir := filepath.Join(srcDir, filepath.Dir(h))
		if seen[dir] {
			continue
		}
		seen[dir] = true
		includes = append(includes, "-iquote", dir)
	}
	return includes, nil
}
