package bcrypt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/logger"
	"go.trai.ch/equip/internal/core/ports"
)

// NodeID is the unique identifier for the password hasher Graft node.
const NodeID graft.ID = "adapter.bcrypt"

func init() {
	graft.Register(graft.Node[ports.PasswordHasher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PasswordHasher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(log), nil
		},
	})
}
