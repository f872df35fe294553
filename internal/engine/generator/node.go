package generator

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/cargo"              //nolint:depguard // Wired in engine wiring
	"github.com/category-lecture-notes/typst-tikz/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"github.com/category-lecture-notes/typst-tikz/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.NodeID,
			git.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			revisions, err := graft.Dep[ports.RevisionSource](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(manifests, revisions, telemetry), nil
		},
	})
}
