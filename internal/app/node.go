package app

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/category-lecture-notes/typst-tikz/internal/adapters/emit"   //nolint:depguard // Wired in app layer
	"github.com/category-lecture-notes/typst-tikz/internal/adapters/render" //nolint:depguard // Wired in app layer
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/category-lecture-notes/typst-tikz/internal/engine/generator"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			generator.NodeID,
			render.NixNodeID,
			render.JSONNodeID,
			emit.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	gen, err := graft.Dep[*generator.Generator](ctx)
	if err != nil {
		return nil, err
	}

	nixRenderer, err := graft.Dep[*render.NixRenderer](ctx)
	if err != nil {
		return nil, err
	}

	jsonRenderer, err := graft.Dep[*render.JSONRenderer](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderers := map[string]ports.Renderer{
		nixRenderer.Format():  nixRenderer,
		jsonRenderer.Format(): jsonRenderer,
	}

	return New(loader, gen, renderers, emitter, telemetry, log), nil
}
