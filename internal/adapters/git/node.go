package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/core/ports"
)

const NodeID graft.ID = "adapter.git.revision"

func init() {
	graft.Register(graft.Node[ports.RevisionProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RevisionProvider, error) {
			return NewProvider(), nil
		},
	})
}
