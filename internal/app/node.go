package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/adapters/logger"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/whisk/internal/engine/configure"
	"go.trai.ch/whisk/internal/engine/setup"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the fully wired application with the shared services the
// entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			setup.NodeID,
			configure.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			gate, err := graft.Dep[*setup.Gate](ctx)
			if err != nil {
				return nil, err
			}

			configurator, err := graft.Dep[*configure.Configurator](ctx)
			if err != nil {
				return nil, err
			}

			return New(gate, configurator), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
