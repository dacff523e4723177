package setup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/adapters/fs"
	"go.trai.ch/whisk/internal/adapters/git"
	"go.trai.ch/whisk/internal/adapters/logger"
	"go.trai.ch/whisk/internal/adapters/telemetry"
	"go.trai.ch/whisk/internal/adapters/venv"
	"go.trai.ch/whisk/internal/core/ports"
)

const NodeID graft.ID = "engine.setup"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			fs.HasherNodeID,
			fs.StoreNodeID,
			venv.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Gate, error) {
			revision, err := graft.Dep[ports.RevisionProvider](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}

			envs, err := graft.Dep[ports.EnvironmentManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewGate(revision, hasher, store, envs, log, tel), nil
		},
	})
}
