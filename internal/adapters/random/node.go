package random

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/core/ports"
)

// NodeID is the unique identifier for the random source Graft node.
const NodeID graft.ID = "adapter.random"

func init() {
	graft.Register(graft.Node[ports.RandomSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RandomSource, error) {
			src, err := NewSource()
			if err != nil {
				return nil, err
			}
			return src, nil
		},
	})
}
