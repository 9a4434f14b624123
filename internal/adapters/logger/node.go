package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/internal/adapters/config"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFromSettings(settings.Log)
		},
	})
}

// NewFromSettings creates a Logger configured by the log settings.
func NewFromSettings(s domain.LogSettings) (*Logger, error) {
	l := New()
	if err := l.SetLevel(s.Level); err != nil {
		return nil, err
	}
	l.SetJSON(s.JSON)
	return l, nil
}
