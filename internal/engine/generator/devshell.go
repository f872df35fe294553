package generator

import (
	"slices"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
)

// DevShellBuilder assembles per-platform interactive shell recipes. The shell
// carries the platform's link inputs so a build started inside it sees what
// the packaged build sees.
type DevShellBuilder struct {
	blueprint *domain.Blueprint
	catalog   Catalog
}

// NewDevShellBuilder creates a DevShellBuilder over the given plan and catalog.
func NewDevShellBuilder(bp *domain.Blueprint, catalog Catalog) *DevShellBuilder {
	return &DevShellBuilder{
		blueprint: bp,
		catalog:   catalog,
	}
}

// Build assembles the shell recipe for one platform.
func (b *DevShellBuilder) Build(p domain.Platform, toolchain domain.Toolchain) domain.DevEnvironment {
	return domain.DevEnvironment{
		Tools:       slices.Clone(b.blueprint.DevShell.Tools),
		BuildInputs: slices.Clone(b.catalog.DevShellInputs[p]),
		Toolchain:   toolchain,
		Env:         b.buildEnv(toolchain),
	}
}

// buildEnv points analysis tooling at the toolchain's standard-library
// sources when the bundle ships them, extended by the blueprint's extra
// entries.
func (b *DevShellBuilder) buildEnv(toolchain domain.Toolchain) map[string]string {
	var env map[string]string
	if toolchain.Has("rust-src") {
		env = map[string]string{domain.DefaultSourcePathVar: toolchain.LibSourcePath()}
	}
	for k, v := range b.blueprint.DevShell.ExtraEnv {
		if env == nil {
			env = make(map[string]string, len(b.blueprint.DevShell.ExtraEnv))
		}
		env[k] = v
	}
	return env
}
