package generator

import (
	"slices"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
)

// PackageBuilder assembles per-platform package descriptors. Everything
// except the catalog lookup is platform-independent, and the toolchain bundle
// is the shared one passed in by the caller, never a per-platform copy.
type PackageBuilder struct {
	blueprint *domain.Blueprint
	catalog   Catalog
}

// NewPackageBuilder creates a PackageBuilder over the given plan and catalog.
func NewPackageBuilder(bp *domain.Blueprint, catalog Catalog) *PackageBuilder {
	return &PackageBuilder{
		blueprint: bp,
		catalog:   catalog,
	}
}

// Build assembles the package descriptor for one platform.
func (b *PackageBuilder) Build(
	p domain.Platform,
	manifest *domain.Manifest,
	revision string,
	toolchain domain.Toolchain,
) domain.PackageDescriptor {
	return domain.PackageDescriptor{
		Name:             manifest.Name,
		Version:          domain.FormatVersion(manifest.Version, revision),
		Source:           manifest.Source,
		Lock:             manifest.Lock,
		NativeBuildTools: slices.Clone(b.blueprint.Package.NativeBuildTools),
		BuildInputs:      slices.Clone(b.catalog.BuildInputs[p]),
		PropagatedTools:  slices.Clone(b.blueprint.Package.PropagatedTools),
		Toolchain:        toolchain,
		Env:              b.buildEnv(manifest, revision),
	}
}

// buildEnv assembles the build environment: artifact routing and the composed
// version string, extended by the blueprint's extra entries. Extra entries win
// on key collisions.
func (b *PackageBuilder) buildEnv(manifest *domain.Manifest, revision string) map[string]string {
	env := map[string]string{
		domain.DefaultArtifactDirVar: domain.DefaultArtifactDir,
		domain.DefaultVersionVar:     domain.FormatVersion(manifest.Version, revision),
	}
	for k, v := range b.blueprint.Package.ExtraEnv {
		env[k] = v
	}
	return env
}
