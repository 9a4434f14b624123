// Package random provides the pseudo-random number source.
package random

import (
	crand "crypto/rand"
	"math/rand/v2"

	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RandomSource = (*Source)(nil)

// Source implements ports.RandomSource with a ChaCha8 generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded from crypto/rand.
func NewSource() (*Source, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, zerr.Wrap(err, "failed to seed random source")
	}
	return NewSeededSource(seed), nil
}

// NewSeededSource creates a Source with a fixed seed.
func NewSeededSource(seed [32]byte) *Source {
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}
