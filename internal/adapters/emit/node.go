package emit

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.emit"

func init() {
	graft.Register(graft.Node[ports.Emitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Emitter, error) {
			return NewWriter(), nil
		},
	})
}
