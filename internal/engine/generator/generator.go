// Package generator evaluates the generation plan into the platform registry.
package generator

import (
	"context"
	"runtime"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Generator expands a blueprint against the crate manifest and the checkout
// state into the full platform registry.
type Generator struct {
	manifests ports.ManifestReader
	revisions ports.RevisionSource
	telemetry ports.Telemetry
}

// NewGenerator creates a new Generator with the given ports.
func NewGenerator(
	manifests ports.ManifestReader,
	revisions ports.RevisionSource,
	telemetry ports.Telemetry,
) *Generator {
	return &Generator{
		manifests: manifests,
		revisions: revisions,
		telemetry: telemetry,
	}
}

// Generate evaluates the blueprint into a registry covering every supported
// platform. The manifest is read once, the revision resolved once and the
// toolchain composed once; only the platform-conditional link inputs differ
// across the matrix.
func (g *Generator) Generate(ctx context.Context, bp *domain.Blueprint) (*domain.Registry, error) {
	manifest, err := g.readManifest(ctx, bp)
	if err != nil {
		return nil, err
	}

	revision, err := g.resolveRevision(ctx, bp)
	if err != nil {
		return nil, err
	}

	// Composed exactly once; both builders receive the same bundle so the
	// package build and the dev shell can never drift apart.
	toolchain, err := domain.ComposeToolchain(bp.Toolchain.Scheme, bp.Toolchain.Modules)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compose toolchain")
	}

	catalog := DefaultCatalog()
	pkgBuilder := NewPackageBuilder(bp, catalog)
	shellBuilder := NewDevShellBuilder(bp, catalog)

	platforms := domain.Platforms()
	packages := make([]domain.PackageDescriptor, len(platforms))
	shells := make([]domain.DevEnvironment, len(platforms))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i, p := range platforms {
		eg.Go(func() error {
			_, vertex := g.telemetry.Record(gctx, "expand "+p.String())
			if err := gctx.Err(); err != nil {
				vertex.Complete(err)
				return err
			}
			packages[i] = pkgBuilder.Build(p, &manifest, revision, toolchain)
			shells[i] = shellBuilder.Build(p, toolchain)
			vertex.Complete(nil)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	registry := domain.NewRegistry(revision)
	for i, p := range platforms {
		registry.Packages[p] = packages[i]
		registry.DevShells[p] = shells[i]
		registry.Formatters[p] = domain.FormatterBinding{Platform: p, Tool: bp.FormatterTool}
	}

	// The overlay publishes the first platform's descriptor as the canonical
	// one; consumers select the per-platform package at application time.
	registry.Overlay = domain.Overlay{
		Name:    bp.Overlay.Name,
		Package: packages[0],
	}

	return registry, nil
}

func (g *Generator) readManifest(ctx context.Context, bp *domain.Blueprint) (domain.Manifest, error) {
	_, vertex := g.telemetry.Record(ctx, "read crate manifest")
	manifest, err := g.manifests.Read(bp.ManifestPath, bp.LockPath)
	vertex.Complete(err)
	if err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "failed to read crate manifest")
	}
	return manifest, nil
}

func (g *Generator) resolveRevision(ctx context.Context, bp *domain.Blueprint) (string, error) {
	_, vertex := g.telemetry.Record(ctx, "resolve revision")

	state, err := g.revisions.Current(ctx)
	if err != nil {
		vertex.Complete(err)
		return "", zerr.Wrap(err, "failed to probe checkout state")
	}

	revision, err := domain.ResolveRevision(state, bp.FallbackRevision)
	if err != nil {
		vertex.Complete(err)
		return "", err
	}

	if !state.HasRevision() {
		vertex.Log(domain.LogLevelWarn, "no usable revision, using fallback "+bp.FallbackRevision)
	}
	vertex.Complete(nil)
	return revision, nil
}
