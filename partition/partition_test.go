package partition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/seed"
	"github.com/gofineman/fineman/weight"
)

func starWithNegativeSpokes(t *testing.T) *graph.Graph[int64] {
	t.Helper()
	g := graph.New[int64](5)
	require.NoError(t, g.AddEdge(0, 1, -1))
	require.NoError(t, g.AddEdge(0, 2, -1))
	require.NoError(t, g.AddEdge(0, 3, -1))
	require.NoError(t, g.AddEdge(0, 4, -1))
	return g
}

func TestHeavyLightRejectsInvalidRho(t *testing.T) {
	g := starWithNegativeSpokes(t)
	lim := weight.IntLimits()
	src := seed.New(1)

	_, _, err := HeavyLight(context.Background(), g, []int{0}, 0, 2, lim, src)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = HeavyLight(context.Background(), g, []int{0}, 5, 2, lim, src)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestHeavyLightPartitionsTheFullSubset(t *testing.T) {
	g := starWithNegativeSpokes(t)
	lim := weight.IntLimits()
	src := seed.New(11)

	heavy, light, err := HeavyLight(context.Background(), g, []int{0}, 1, 2, lim, src)
	require.NoError(t, err)

	total := len(heavy) + len(light)
	assert.Equal(t, 1, total, "every member of U lands in exactly one of Heavy or Light")
	_, inHeavy := heavy[0]
	_, inLight := light[0]
	assert.True(t, inHeavy != inLight, "vertex 0 must not be in both or neither")
}

func TestHeavyLightIsDeterministicForAFixedSeed(t *testing.T) {
	g := starWithNegativeSpokes(t)
	lim := weight.IntLimits()

	h1, l1, err := HeavyLight(context.Background(), g, []int{0}, 1, 3, lim, seed.New(99))
	require.NoError(t, err)
	h2, l2, err := HeavyLight(context.Background(), g, []int{0}, 1, 3, lim, seed.New(99))
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, l1, l2)
}

func TestHeavyLightRespectsCancellation(t *testing.T) {
	g := starWithNegativeSpokes(t)
	lim := weight.IntLimits()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := HeavyLight(ctx, g, []int{0}, 1, 2, lim, seed.New(1))
	assert.Error(t, err)
}
