package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/adapters/random"
)

func TestSource_Float64Range(t *testing.T) {
	src, err := random.NewSource()
	require.NoError(t, err)

	for range 1000 {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNewSeededSource_Reproducible(t *testing.T) {
	seed := [32]byte{1, 2, 3}
	a := random.NewSeededSource(seed)
	b := random.NewSeededSource(seed)

	for range 10 {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
