package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/fs"
	"go.trai.ch/equip/internal/adapters/logger"
	"go.trai.ch/equip/internal/adapters/prompt"
	"go.trai.ch/equip/internal/core/ports"
)

// NodeID is the unique identifier for the input resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.InputResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			files, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(files, prompter, log), nil
		},
	})
}
