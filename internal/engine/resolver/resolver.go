// Package resolver decides which text a hash command operates on.
package resolver

import (
	"context"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements ports.InputResolver.
//
// Sources are tried in a fixed order: a forced prompt, then the file, then
// the positional text, then an interactive prompt. Exactly one source is
// used per call.
type Resolver struct {
	files    ports.FileReader
	prompter ports.Prompter
	logger   ports.Logger
}

// New creates a new Resolver.
func New(files ports.FileReader, prompter ports.Prompter, logger ports.Logger) *Resolver {
	return &Resolver{
		files:    files,
		prompter: prompter,
		logger:   logger,
	}
}

// Resolve returns the text selected for spec. It fails with domain.ErrNoInput
// when the selected source yields an empty text.
func (r *Resolver) Resolve(ctx context.Context, spec domain.InputSpec) (string, error) {
	text, err := r.read(ctx, spec)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", domain.ErrNoInput
	}
	return text, nil
}

func (r *Resolver) read(ctx context.Context, spec domain.InputSpec) (string, error) {
	switch {
	case spec.ForcePrompt:
		return r.prompt(ctx, spec.Secret)
	case spec.File != "":
		r.logger.Debug("reading file contents from " + spec.File)
		return r.files.ReadText(spec.File)
	case spec.Input.Present():
		r.logger.Debug("using text contents")
		return spec.Input.String(), nil
	default:
		return r.prompt(ctx, spec.Secret)
	}
}

func (r *Resolver) prompt(ctx context.Context, secret bool) (string, error) {
	text, err := r.prompter.Prompt(ctx, style.Prompt, secret)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve input")
	}
	return text, nil
}
