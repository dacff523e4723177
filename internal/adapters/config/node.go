package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/core/ports"
)

const (
	NodeID          graft.ID = "adapter.config.loader"
	UserCacheNodeID graft.ID = "adapter.config.usercache"
)

func init() {
	// Project Config Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// User Config Cache Node
	graft.Register(graft.Node[ports.UserConfigStore]{
		ID:        UserCacheNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.UserConfigStore, error) {
			return NewUserCacheStore(), nil
		},
	})
}
