package ports

import "context"

// ArchiveSpec is the input to one archiver invocation.
type ArchiveSpec struct {
	// GoBinary is the go binary providing the pack tool.
	GoBinary string

	// OutPath is the archive file, created when absent.
	OutPath string

	// Objects are appended in the given order. Callers are responsible for
	// ordering them deterministically.
	Objects []string
}

// Archiver packs object files into one static archive with create/append
// semantics.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Archive packs spec.Objects into spec.OutPath. Failures wrap
	// domain.ErrAssembly.
	Archive(ctx context.Context, spec ArchiveSpec) error
}
