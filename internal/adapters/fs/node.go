package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whisk/internal/core/ports"
)

const (
	HasherNodeID graft.ID = "adapter.fs.hasher"
	StoreNodeID  graft.ID = "adapter.fs.store"
)

func init() {
	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Fingerprint Store Node
	graft.Register(graft.Node[ports.FingerprintStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FingerprintStore, error) {
			return NewRecordStore(), nil
		},
	})
}
