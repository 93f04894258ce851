package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/core/ports"
)

// NodeID is the graft node providing the reporter factory.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.ReporterFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReporterFactory, error) {
			return NewFactory(nil), nil
		},
	})
}
