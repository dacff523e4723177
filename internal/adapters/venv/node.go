package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/adapters/logger"
	"go.trai.ch/whisk/internal/core/ports"
)

const NodeID graft.ID = "adapter.venv.manager"

func init() {
	graft.Register(graft.Node[ports.EnvironmentManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(log), nil
		},
	})
}
