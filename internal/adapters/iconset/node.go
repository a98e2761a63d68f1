package iconset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconpick/internal/adapters/logger"
	"go.trai.ch/iconpick/internal/core/ports"
	"go.trai.ch/iconpick/internal/engine/catalog"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Catalog, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// Decoding is deferred to the first lookup.
			buildCtx := context.WithoutCancel(ctx)
			loader := NewLoader(log)
			return catalog.NewLazy(func() *catalog.Catalog {
				return loader.Catalog(buildCtx)
			}), nil
		},
	})
}
