package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newHasher() *fs.Hasher {
	return fs.NewHasher(fs.NewWalker())
}

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.lock", "[[package]]\nname = \"typst-tikz\"\n")

	h := newHasher()

	first, err := h.HashFile(filepath.Join(dir, "Cargo.lock"))
	require.NoError(t, err)
	second, err := h.HashFile(filepath.Join(dir, "Cargo.lock"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	h := newHasher()

	_, err := h.HashFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to open file")
}

func TestHasher_HashTree_StableAcrossLocations(t *testing.T) {
	h := newHasher()

	first := t.TempDir()
	writeFile(t, first, "src/main.rs", "fn main() {}\n")
	writeFile(t, first, "Cargo.toml", "[package]\n")

	second := t.TempDir()
	writeFile(t, second, "src/main.rs", "fn main() {}\n")
	writeFile(t, second, "Cargo.toml", "[package]\n")

	a, err := h.HashTree(first)
	require.NoError(t, err)
	b, err := h.HashTree(second)
	require.NoError(t, err)

	// Same content under different roots digests identically.
	assert.Equal(t, a, b)
}

func TestHasher_HashTree_ContentSensitive(t *testing.T) {
	h := newHasher()

	dir := t.TempDir()
	writeFile(t, dir, "src/main.rs", "fn main() {}\n")

	before, err := h.HashTree(dir)
	require.NoError(t, err)

	writeFile(t, dir, "src/main.rs", "fn main() { println!(); }\n")

	after, err := h.HashTree(dir)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_HashTree_PathSensitive(t *testing.T) {
	h := newHasher()

	dir := t.TempDir()
	writeFile(t, dir, "src/a.rs", "content")

	before, err := h.HashTree(dir)
	require.NoError(t, err)

	require.NoError(t, os.Rename(filepath.Join(dir, "src/a.rs"), filepath.Join(dir, "src/b.rs")))

	after, err := h.HashTree(dir)
	require.NoError(t, err)

	// Same content under a new name is a different tree.
	assert.NotEqual(t, before, after)
}

func TestHasher_HashTree_IgnoresBuildOutput(t *testing.T) {
	h := newHasher()

	dir := t.TempDir()
	writeFile(t, dir, "src/main.rs", "fn main() {}\n")

	before, err := h.HashTree(dir)
	require.NoError(t, err)

	writeFile(t, dir, "target/debug/typst-tikz", "binary")
	writeFile(t, dir, "artifacts/diagram.svg", "<svg/>")
	writeFile(t, dir, "build.gen.nix", "rec { }")
	writeFile(t, dir, "build.gen.json", "{}")

	after, err := h.HashTree(dir)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestHasher_HashTree_MissingRoot(t *testing.T) {
	h := newHasher()

	_, err := h.HashTree(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to stat tree root")
}
