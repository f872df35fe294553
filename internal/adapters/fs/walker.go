// Package fs provides file system adapters for walking and fingerprinting files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping version
// control metadata and any entry matching an ignore pattern. Lexical order
// makes every consumer of the iterator deterministic for free.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			skip, action := w.exclusion(d, ignores)
			if action != nil {
				return action
			}
			if skip || d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// exclusion reports whether the entry is excluded from the walk. The action
// is filepath.SkipDir when a whole directory subtree is excluded.
func (w *Walker) exclusion(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	// Version control metadata never participates in content fingerprints.
	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
