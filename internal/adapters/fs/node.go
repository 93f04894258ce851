package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	AssetProbeNodeID graft.ID = "adapter.fs.assets"
	InspectorNodeID  graft.ID = "adapter.fs.inspector"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.AssetProbe]{
		ID:        AssetProbeNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.AssetProbe, error) {
			return NewAssetProbe(""), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ArtifactInspector, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(walker), nil
		},
	})
}
