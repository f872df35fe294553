// Package cargo reads crate metadata from Cargo manifest files.
package cargo

import (
	"os"
	"path/filepath"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// DefaultLockName is the lock file assumed to sit next to the manifest when
// no explicit lock path is configured.
const DefaultLockName = "Cargo.lock"

// manifestFile mirrors the subset of the Cargo manifest we consume.
type manifestFile struct {
	Package packageSection `toml:"package"`
}

type packageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Reader implements ports.ManifestReader backed by TOML files on disk.
type Reader struct {
	hasher ports.Hasher
}

// NewReader creates a manifest reader. The hasher fingerprints the source
// tree and lock file the manifest refers to.
func NewReader(hasher ports.Hasher) *Reader {
	return &Reader{hasher: hasher}
}

// Read loads the manifest at manifestPath, validates it, and fingerprints
// the crate's source tree and lock file.
func (r *Reader) Read(manifestPath, lockPath string) (domain.Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", manifestPath)
	}

	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(err, domain.ErrManifestInvalid.Error()),
			"path", manifestPath,
		)
	}

	if lockPath == "" {
		lockPath = filepath.Join(filepath.Dir(manifestPath), DefaultLockName)
	}

	manifest := domain.Manifest{
		Name:    file.Package.Name,
		Version: file.Package.Version,
		Source:  domain.SourceRef{Path: filepath.Dir(manifestPath)},
		Lock:    domain.LockRef{Path: lockPath},
	}
	if err := manifest.Validate(); err != nil {
		return domain.Manifest{}, zerr.With(err, "path", manifestPath)
	}

	srcDigest, err := r.hasher.HashTree(manifest.Source.Path)
	if err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "failed to fingerprint source tree")
	}
	manifest.Source.Digest = srcDigest

	lockDigest, err := r.hasher.HashFile(manifest.Lock.Path)
	if err != nil {
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(err, "failed to fingerprint lock file"),
			"path", manifest.Lock.Path,
		)
	}
	manifest.Lock.Digest = lockDigest

	return manifest, nil
}
