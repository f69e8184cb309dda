// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradelanes/builder"
	"github.com/katalvlaran/tradelanes/network"
)

func TestChain(t *testing.T) {
	n, err := builder.Build(nil, builder.Chain(4))
	require.NoError(t, err)
	assert.Equal(t, 4, n.PlanetCount())
	want := []network.Route{
		{From: 0, To: 1, Cost: 10, FailureProbability: 0.1},
		{From: 1, To: 2, Cost: 10, FailureProbability: 0.1},
		{From: 2, To: 3, Cost: 10, FailureProbability: 0.1},
	}
	if diff := cmp.Diff(want, n.Routes()); diff != "" {
		t.Errorf("Chain(4) routes (-want +got):\n%s", diff)
	}

	p, ok := n.Planet(3)
	require.True(t, ok)
	assert.Equal(t, "Planet 3", p.Name)
}

func TestRing_ClosesLoop(t *testing.T) {
	n, err := builder.Build(
		[]builder.Option{builder.WithNameScheme(func(i int) string { return fmt.Sprintf("P%d", i) })},
		builder.Ring(3),
	)
	require.NoError(t, err)
	routes := n.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, 2, routes[2].From)
	assert.Equal(t, 0, routes[2].To)

	reach, err := n.ReachableFrom(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, reach)

	p, _ := n.Planet(0)
	assert.Equal(t, "P0", p.Name)
}

func TestTooFewPlanets(t *testing.T) {
	for _, c := range []builder.Constructor{builder.Chain(1), builder.Ring(0), builder.RandomSparse(1, 0.5)} {
		_, err := builder.Build([]builder.Option{builder.WithSeed(1)}, c)
		assert.ErrorIs(t, err, builder.ErrTooFewPlanets)
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.Build(nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidDensity)

	_, err = builder.Build(nil, builder.RandomSparse(4, math.NaN()))
	assert.ErrorIs(t, err, builder.ErrInvalidDensity)

	_, err = builder.Build(nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, empty.PlanetCount())
	assert.Zero(t, empty.RouteCount())

	full, err := builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 5*4, full.RouteCount(), "complete directed network without loops")
	for _, r := range full.Routes() {
		assert.NotEqual(t, r.From, r.To)
	}
}

func TestRandomSparse_DeterministicForSeed(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{
			builder.WithSeed(99),
			builder.WithCostFn(builder.UniformCost(1, 50)),
			builder.WithFailureFn(builder.UniformFailure(0.5)),
		}
	}
	a, err := builder.Build(opts(), builder.RandomSparse(8, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(opts(), builder.RandomSparse(8, 0.3))
	require.NoError(t, err)

	if diff := cmp.Diff(a.Routes(), b.Routes()); diff != "" {
		t.Errorf("same seed produced different routes (-a +b):\n%s", diff)
	}
	for _, r := range a.Routes() {
		assert.GreaterOrEqual(t, r.Cost, 1.0)
		assert.Less(t, r.Cost, 50.0)
		assert.Less(t, r.FailureProbability, 0.5)
	}
}

func TestComposition_SharesPlanets(t *testing.T) {
	n, err := builder.Build([]builder.Option{builder.WithRand(rand.New(rand.NewSource(3)))},
		builder.Ring(6),
		builder.RandomSparse(6, 0.2),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, n.PlanetCount())
	assert.GreaterOrEqual(t, n.RouteCount(), 6)
}

func TestBadGenerator_SurfacesNetworkError(t *testing.T) {
	_, err := builder.Build(
		[]builder.Option{builder.WithFailureFn(func(*rand.Rand) float64 { return 1 })},
		builder.Chain(3),
	)
	assert.ErrorIs(t, err, network.ErrBadProbability)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithNameScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.WithFailureFn(nil) })
	assert.Panics(t, func() { builder.UniformCost(5, 1) })
	assert.Panics(t, func() { builder.UniformFailure(1.5) })
}

func TestUniformGenerators_NilRand(t *testing.T) {
	assert.Equal(t, 3.0, builder.UniformCost(3, 9)(nil))
	assert.Equal(t, 0.0, builder.UniformFailure(0.9)(nil))
}
