// Package fs provides file system adapters for walking and hashing trees.
package fs

import (
	"io/fs"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Walker lists the files of a directory tree in deterministic order.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Files returns every regular file under root as a sorted slice of paths
// relative to root. Sorted output is what makes tree digests reproducible:
// directory iteration order must never leak into a content address.
func (w *Walker) Files(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk tree"), "root", root)
	}

	sort.Strings(files)
	return files, nil
}
