package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/core/ports"
)

// PlatformNodeID is the graft node providing the host platform.
const PlatformNodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.Platform]{
		ID:        PlatformNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Platform, error) {
			return NewPlatform(), nil
		},
	})
}
