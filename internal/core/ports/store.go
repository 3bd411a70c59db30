package ports

import "github.com/0xg0nz0/pants/internal/core/domain"

// SnapshotStore is the content-addressed file tree storage shared by all
// concurrent compiles. Snapshots are immutable once taken.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Snapshot captures the directory tree rooted at dir and returns its
	// content address. Taking the same tree twice yields the same digest.
	Snapshot(dir string) (domain.Digest, error)

	// Materialize writes the tree addressed by digest under dest, which must
	// be an empty or nonexistent directory.
	Materialize(digest domain.Digest, dest string) error
}
