// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/cargo"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/config"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/emit"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/fs"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/git"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/logger"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/render"
	_ "github.com/category-lecture-notes/typst-tikz/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/category-lecture-notes/typst-tikz/internal/app"
	_ "github.com/category-lecture-notes/typst-tikz/internal/engine/generator"
)
