package ports

import (
	"context"

	"go.trai.ch/equip/internal/core/domain"
)

// InputResolver defines the interface for deciding which text a command operates on.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// Resolve returns the non-empty text selected by source precedence:
	// forced prompt, then file, then positional text, then an interactive prompt.
	Resolve(ctx context.Context, spec domain.InputSpec) (string, error)
}
