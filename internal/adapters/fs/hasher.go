package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes for files and whole trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashTree computes a single hash over every file in the tree: relative path
// and content per file, in sorted path order. Paths are part of the hash so
// renaming a file changes the tree's address.
func (h *Hasher) HashTree(root string) (string, error) {
	files, err := h.walker.Files(root)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for _, rel := range files {
		contentHash, err := h.HashFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(fmt.Sprintf("%016x", contentHash))
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
