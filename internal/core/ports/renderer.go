package ports

import "github.com/category-lecture-notes/typst-tikz/internal/core/domain"

// Renderer defines the interface for serializing an evaluated registry into
// an output document.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Format names the output format, e.g. "nix" or "json".
	Format() string

	// Render serializes the registry. The output is deterministic: the same
	// registry always renders to the same bytes.
	Render(registry *domain.Registry) ([]byte, error)
}
