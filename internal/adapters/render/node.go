package render

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	NixNodeID  graft.ID = "adapter.render.nix"
	JSONNodeID graft.ID = "adapter.render.json"
)

func init() {
	// Renderers register under their concrete types; the app layer indexes
	// them by format name.
	graft.Register(graft.Node[*NixRenderer]{
		ID:        NixNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*NixRenderer, error) {
			return NewNixRenderer(), nil
		},
	})

	graft.Register(graft.Node[*JSONRenderer]{
		ID:        JSONNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*JSONRenderer, error) {
			return NewJSONRenderer(), nil
		},
	})
}
