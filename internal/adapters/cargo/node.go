package cargo

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/fs"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.cargo"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ManifestReader, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(hasher), nil
		},
	})
}
