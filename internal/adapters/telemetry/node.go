package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/adapters/telemetry/progrock"
	"go.trai.ch/whisk/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			return progrock.New(), nil
		},
	})
}
