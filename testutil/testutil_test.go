package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.Keys(500, 10)

	require.Len(t, keys, 500)
	seen := make(map[float64]struct{})
	for _, k := range keys {
		assert.GreaterOrEqual(t, k, 0.0)
		assert.Less(t, k, 1.0)
		seen[k] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), 10)
}

func TestAmounts(t *testing.T) {
	rng := NewRNG(4711)

	for _, v := range rng.Amounts(200, 40) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 40.0)
	}
}

func TestNames(t *testing.T) {
	rng := NewRNG(4711)

	names := rng.Names(50)

	require.Len(t, names, 50)
	for _, n := range names {
		assert.NotEmpty(t, n)
		assert.Equal(t, strings.ToLower(n), n)
		assert.LessOrEqual(t, len(strings.Fields(n)), 3)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Keys(20, 100)

	rng.Reset()

	assert.Equal(t, first, rng.Keys(20, 100))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestSparsePresence(t *testing.T) {
	rng := NewRNG(4711)

	assert.NotContains(t, rng.SparsePresence(100, 0), false)
	assert.NotContains(t, rng.SparsePresence(100, 1), true)
}
