package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func TestWalker_WalkFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", "[package]")
	writeFile(t, dir, "src/main.rs", "fn main() {}")
	writeFile(t, dir, ".git/HEAD", "ref: refs/heads/main")
	writeFile(t, dir, "target/debug/out", "binary")
	writeFile(t, dir, "notes.tmp", "scratch")

	var got []string
	for path := range fs.NewWalker().WalkFiles(dir, []string{"target", "*.tmp"}) {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	want := []string{"Cargo.toml", "src/main.rs"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWalker_WalkFiles_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.rs", "a.rs", "c.rs"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}

	var got []string
	for path := range fs.NewWalker().WalkFiles(dir, nil) {
		got = append(got, filepath.Base(path))
	}

	want := []string{"a.rs", "b.rs", "c.rs"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
