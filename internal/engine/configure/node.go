package configure

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/adapters/config"
	"go.trai.ch/whisk/internal/adapters/logger"
	"go.trai.ch/whisk/internal/core/ports"
)

const NodeID graft.ID = "engine.configure"

func init() {
	graft.Register(graft.Node[*Configurator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.UserCacheNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Configurator, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			users, err := graft.Dep[ports.UserConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewConfigurator(loader, users, log, os.Stdout), nil
		},
	})
}
