// Package app implements the application layer for equip.
package app

import (
	"context"
	"math"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/engine/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver  ports.InputResolver
	digester  ports.Digester
	passwords ports.PasswordHasher
	random    ports.RandomSource
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	resolver ports.InputResolver,
	digester ports.Digester,
	passwords ports.PasswordHasher,
	random ports.RandomSource,
	log ports.Logger,
) *App {
	return &App{
		resolver:  resolver,
		digester:  digester,
		passwords: passwords,
		random:    random,
		logger:    log,
	}
}

// Hash resolves the input of req and returns the text to print.
// Plain digests are rendered in req.Format; bcrypt returns the self-encoded
// hash. Request values are validated before any input is read.
func (a *App) Hash(ctx context.Context, req domain.HashRequest) (string, error) {
	if err := validateHash(req); err != nil {
		return "", err
	}

	text, err := a.resolver.Resolve(ctx, req.Input)
	if err != nil {
		return "", err
	}

	if !req.Algorithm.IsDigest() {
		return a.passwords.Hash([]byte(text), req.Rounds)
	}

	raw, err := a.digester.Digest(req.Algorithm, []byte(text))
	if err != nil {
		return "", domain.Annotate(zerr.Wrap(err, domain.ErrDigestFailed.Error()), "algorithm", req.Algorithm.String())
	}

	return render.Digest(raw, req.Format)
}

func validateHash(req domain.HashRequest) error {
	if _, err := domain.ParseAlgorithm(req.Algorithm.String()); err != nil {
		return err
	}
	if !req.Algorithm.IsDigest() {
		return domain.ValidateRounds(req.Rounds)
	}
	_, err := domain.ParseOutputFormat(req.Format.String())
	return err
}

// RandomNumbers generates req.Repeat numbers in the requested range and
// renders each in req.Base.
func (a *App) RandomNumbers(ctx context.Context, req domain.RandomRequest) ([]string, error) {
	if req.Repeat < 1 {
		return nil, domain.Annotate(domain.ErrInvalidRepeat, "repeat", req.Repeat)
	}
	if _, err := domain.ParseNumberBase(req.Base.String()); err != nil {
		return nil, err
	}

	low, high := req.Bounds()
	for _, v := range []float64{low, high} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domain.Annotate(domain.ErrInvalidNumber, "value", v)
		}
	}

	if req.Integer {
		low, high = roundHalfUp(low), roundHalfUp(high)
	}

	out := make([]string, 0, req.Repeat)
	for range req.Repeat {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v := a.random.Float64()*(high-low) + low
		if req.Integer {
			v = roundHalfUp(v)
		}
		out = append(out, render.Number(v, req.Base))
	}

	a.logger.Debug("generated random numbers")
	return out, nil
}

// roundHalfUp rounds to the nearest integer, with halves rounded towards
// positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
