// Package emit writes rendered documents to disk, skipping unchanged targets.
package emit

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Emitter = (*Writer)(nil)

// Writer implements ports.Emitter with change detection: a destination whose
// content already matches is left untouched, so mtime-based tooling
// downstream sees no spurious updates.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Emit writes data to path and reports whether the destination changed.
func (w *Writer) Emit(path string, data []byte) (bool, error) {
	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
		// First write.
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to read existing output"), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}

	//nolint:gosec // Rendered documents are plain project files
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write output"), "path", path)
	}

	return true, nil
}
