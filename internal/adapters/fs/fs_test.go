package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xg0nz0/pants/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestWalker_Files_Sorted(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"zeta.c":          "int z;",
		"alpha.go":        "package main",
		"sub/constants.h": "#define N 2",
	})

	files, err := fs.NewWalker().Files(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.go", filepath.Join("sub", "constants.h"), "zeta.c"}, files)
}

func TestHasher_HashTree_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"printer.go": "package main",
		"print.c":    "void do_print(void) {}",
	})

	hasher := fs.NewHasher(fs.NewWalker())

	first, err := hasher.HashTree(root)
	require.NoError(t, err)
	second, err := hasher.HashTree(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Identical content in a second location hashes identically.
	other := t.TempDir()
	writeTree(t, other, map[string]string{
		"printer.go": "package main",
		"print.c":    "void do_print(void) {}",
	})
	third, err := hasher.HashTree(other)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestHasher_HashTree_SensitiveToPathAndContent(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	base := t.TempDir()
	writeTree(t, base, map[string]string{"print.c": "void do_print(void) {}"})
	baseHash, err := hasher.HashTree(base)
	require.NoError(t, err)

	renamed := t.TempDir()
	writeTree(t, renamed, map[string]string{"print2.c": "void do_print(void) {}"})
	renamedHash, err := hasher.HashTree(renamed)
	require.NoError(t, err)
	assert.NotEqual(t, baseHash, renamedHash)

	edited := t.TempDir()
	writeTree(t, edited, map[string]string{"print.c": "void do_print(void) { return; }"})
	editedHash, err := hasher.HashTree(edited)
	require.NoError(t, err)
	assert.NotEqual(t, baseHash, editedHash)
}
