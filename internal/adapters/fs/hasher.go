package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// defaultIgnores excludes build output from source fingerprints: the crate's
// target directory and the generated-artifact directory both change on every
// build without the sources changing, and emitted descriptors must not feed
// back into the digest they were derived from.
var defaultIgnores = []string{"target", "artifacts", "*.gen.nix", "*.gen.json"}

// Hasher computes content digests for files and directory trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile computes the digest of a single file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	sum, err := h.contentHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// HashTree computes the digest of the directory tree at root. Each file
// contributes its root-relative path and content hash, so the digest is
// stable across checkout locations and file-visit order but shifts when any
// file moves, appears, disappears, or changes.
func (h *Hasher) HashTree(root string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat tree root"), "path", root)
	}

	hasher := xxhash.New()
	for path := range h.walker.WalkFiles(root, defaultIgnores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}

		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		sum, err := h.contentHash(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// contentHash computes the XXHash of a file's content.
func (h *Hasher) contentHash(path string) (uint64, error) {
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
