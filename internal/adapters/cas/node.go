package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
)

// NodeID is the graft node providing the build record store.
const NodeID graft.ID = "adapter.build_record_store"

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildRecordStore, error) {
			return NewStore(filepath.Join(domain.StateDir, DefaultFileName)), nil
		},
	})
}
