// Package ports defines the core interfaces for the application.
package ports

import "github.com/category-lecture-notes/typst-tikz/internal/core/domain"

// ConfigLoader defines the interface for loading the generation blueprint.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the blueprint from the given path and returns it with
	// defaults applied. A missing file is not an error: the defaults are
	// the blueprint.
	Load(path string) (*domain.Blueprint, error)
}
