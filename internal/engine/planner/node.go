package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundler/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundler/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.AssetProbeNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			assets, err := graft.Dep[ports.AssetProbe](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(assets, log), nil
		},
	})
}
