package ports

import "github.com/category-lecture-notes/typst-tikz/internal/core/domain"

// ManifestReader defines the interface for reading the crate manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read loads and validates the manifest at manifestPath. lockPath names
	// the pinned lock file; when empty, the manifest's sibling lock file is
	// used.
	Read(manifestPath, lockPath string) (domain.Manifest, error)
}
