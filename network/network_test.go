// SPDX-License-Identifier: MIT

package network_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradelanes/network"
)

func TestAddPlanet_Validation(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddPlanet(0, "Earth"))
	require.NoError(t, n.AddPlanet(7, "")) // empty names are allowed

	assert.ErrorIs(t, n.AddPlanet(-1, "Void"), network.ErrNegativeID)
	assert.ErrorIs(t, n.AddPlanet(0, "Earth again"), network.ErrDuplicatePlanet)
	assert.Equal(t, 2, n.PlanetCount())
}

func TestAddRoute_Validation(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddPlanet(0, "Earth"))
	require.NoError(t, n.AddPlanet(1, "Mars"))

	cases := []struct {
		name  string
		route network.Route
		want  error
	}{
		{"negative cost", network.Route{From: 0, To: 1, Cost: -1}, network.ErrNegativeCost},
		{"NaN cost", network.Route{From: 0, To: 1, Cost: math.NaN()}, network.ErrBadCost},
		{"infinite cost", network.Route{From: 0, To: 1, Cost: math.Inf(1)}, network.ErrBadCost},
		{"probability one", network.Route{From: 0, To: 1, Cost: 1, FailureProbability: 1}, network.ErrBadProbability},
		{"negative probability", network.Route{From: 0, To: 1, Cost: 1, FailureProbability: -0.1}, network.ErrBadProbability},
		{"NaN probability", network.Route{From: 0, To: 1, Cost: 1, FailureProbability: math.NaN()}, network.ErrBadProbability},
		{"unknown origin", network.Route{From: 9, To: 1, Cost: 1}, network.ErrPlanetNotFound},
		{"unknown target", network.Route{From: 0, To: 9, Cost: 1}, network.ErrPlanetNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, n.AddRoute(tc.route), tc.want)
		})
	}
	assert.Zero(t, n.RouteCount(), "rejected routes must not be stored")
}

func TestAddRoute_ParallelAndLoops(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddPlanet(0, "Earth"))
	require.NoError(t, n.AddPlanet(1, "Mars"))

	require.NoError(t, n.AddRoute(network.Route{From: 0, To: 1, Cost: 4}))
	require.NoError(t, n.AddRoute(network.Route{From: 0, To: 1, Cost: 2, FailureProbability: 0.5}))
	require.NoError(t, n.AddRoute(network.Route{From: 0, To: 0, Cost: 1}))
	require.NoError(t, n.AddRoute(network.Route{From: 1, To: 0, Cost: 0}))

	out, err := n.Outgoing(0)
	require.NoError(t, err)
	want := []network.Route{
		{From: 0, To: 1, Cost: 4},
		{From: 0, To: 1, Cost: 2, FailureProbability: 0.5},
		{From: 0, To: 0, Cost: 1},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Outgoing(0) mismatch (-want +got):\n%s", diff)
	}

	_, err = n.Outgoing(42)
	assert.ErrorIs(t, err, network.ErrPlanetNotFound)
}

func TestPlanets_SortedByID(t *testing.T) {
	n := network.New()
	for _, id := range []int{3, 0, 2, 1} {
		require.NoError(t, n.AddPlanet(id, ""))
	}
	var ids []int
	for _, p := range n.Planets() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, ids)

	p, ok := n.Planet(2)
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)
	assert.False(t, n.HasPlanet(5))
}

func TestRoute_DiscountedCost(t *testing.T) {
	r := network.Route{Cost: 20, FailureProbability: 0.15}
	assert.InDelta(t, 17.0, r.DiscountedCost(), 1e-12)
	assert.InDelta(t, 0.85, r.SuccessProbability(), 1e-12)

	free := network.Route{Cost: 20}
	assert.Equal(t, 20.0, free.DiscountedCost())
}

func TestAdjacency_Snapshot(t *testing.T) {
	n := network.Sample()
	adj := n.Adjacency()
	require.Len(t, adj, 5)
	assert.Len(t, adj[0], 2)
	assert.Len(t, adj[1], 2)
	assert.Empty(t, adj[4], "Zenith has no outgoing routes")
}

func TestClone_Independent(t *testing.T) {
	n := network.Sample()
	c := n.Clone()
	require.NoError(t, c.AddPlanet(5, "Pluto"))
	require.NoError(t, c.AddRoute(network.Route{From: 4, To: 5, Cost: 1}))

	assert.Equal(t, 5, n.PlanetCount())
	assert.Equal(t, 6, n.RouteCount())
	assert.Equal(t, 6, c.PlanetCount())
	assert.Equal(t, 7, c.RouteCount())
	if diff := cmp.Diff(n.Routes(), c.Routes()[:6]); diff != "" {
		t.Errorf("clone routes diverged (-orig +clone):\n%s", diff)
	}
}

func TestReachableFrom(t *testing.T) {
	n := network.Sample()

	got, err := n.ReachableFrom(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = n.ReachableFrom(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got, "sink reaches only itself")

	_, err = n.ReachableFrom(99)
	assert.ErrorIs(t, err, network.ErrPlanetNotFound)
}

func TestSample_Shape(t *testing.T) {
	n := network.Sample()
	assert.Equal(t, 5, n.PlanetCount())
	assert.Equal(t, 6, n.RouteCount())

	p, ok := n.Planet(network.SampleDestination)
	require.True(t, ok)
	assert.Equal(t, "Zenith", p.Name)
}
