// Package cas implements the content-addressed snapshot store for input and
// output file trees.
package cas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/0xg0nz0/pants/internal/adapters/fs"
	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore on the local filesystem: file contents
// live as blobs keyed by their hash, trees as JSON manifests keyed by the
// manifest's own hash. Snapshots are immutable; concurrent readers need no
// locking and the single mutex only serializes blob writes.
type Store struct {
	root   string
	hasher *fs.Hasher
	walker *fs.Walker
	mu     sync.Mutex
}

// manifestEntry is one file in a tree manifest. Entries are kept in sorted
// path order so identical trees marshal to identical bytes.
type manifestEntry struct {
	Path string `json:"path"`
	Blob string `json:"blob"`
	Mode uint32 `json:"mode"`
}

// NewStore creates a Store rooted at the given directory.
func NewStore(root string, hasher *fs.Hasher, walker *fs.Walker) (*Store, error) {
	root = filepath.Clean(root)
	for _, dir := range []string{blobDir(root), treeDir(root)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.Wrap(err, "failed to create snapshot store")
		}
	}
	return &Store{root: root, hasher: hasher, walker: walker}, nil
}

func blobDir(root string) string { return filepath.Join(root, "blobs") }
func treeDir(root string) string { return filepath.Join(root, "trees") }

// Snapshot captures the tree rooted at dir and returns its content address.
func (s *Store) Snapshot(dir string) (domain.Digest, error) {
	files, err := s.walker.Files(dir)
	if err != nil {
		return "", err
	}

	entries := make([]manifestEntry, 0, len(files))
	for _, rel := range files {
		path := filepath.Join(dir, rel)

		hash, err := s.hasher.HashFile(path)
		if err != nil {
			return "", err
		}
		blob := fmt.Sprintf("%016x", hash)

		info, err := os.Stat(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to stat input file"), "path", path)
		}

		if err := s.storeBlob(path, blob); err != nil {
			return "", err
		}
		entries = append(entries, manifestEntry{
			Path: filepath.ToSlash(rel),
			Blob: blob,
			Mode: uint32(info.Mode().Perm()),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal tree manifest")
	}

	digest := domain.Digest(fmt.Sprintf("%016x", xxhash.Sum64(data)))
	manifestPath := filepath.Join(treeDir(s.root), digest.String()+".json")
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil { //nolint:gosec // Store-owned path
		return "", zerr.Wrap(err, "failed to write tree manifest")
	}
	return digest, nil
}

// storeBlob copies the file into the blob directory unless already present.
// Blobs are content-keyed so a pre-existing blob is always byte-identical.
func (s *Store) storeBlob(src, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst := filepath.Join(blobDir(s.root), blob)
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	tmp := dst + ".tmp"
	if err := copyFile(src, tmp, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store blob"), "path", src)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return zerr.Wrap(err, "failed to commit blob")
	}
	return nil
}

// Materialize writes the tree addressed by digest under dest. The zero digest
// addresses the empty tree.
func (s *Store) Materialize(digest domain.Digest, dest string) error {
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create destination")
	}
	if digest.IsZero() {
		return nil
	}

	manifestPath := filepath.Join(treeDir(s.root), digest.String()+".json")
	data, err := os.ReadFile(manifestPath) //nolint:gosec // Store-owned path
	if err != nil {
		return zerr.With(zerr.Wrap(err, "unknown tree digest"), "digest", digest.String())
	}

	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return zerr.Wrap(err, "failed to unmarshal tree manifest")
	}

	for _, entry := range entries {
		target := filepath.Join(dest, filepath.FromSlash(entry.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return zerr.Wrap(err, "failed to create tree directory")
		}
		blob := filepath.Join(blobDir(s.root), entry.Blob)
		if err := copyFile(blob, target, os.FileMode(entry.Mode)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to materialize file"), "path", entry.Path)
		}
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Store-owned path
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // Store-owned path
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
