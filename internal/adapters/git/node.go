package git

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/logger"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.RevisionSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RevisionSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(".", log), nil
		},
	})
}
