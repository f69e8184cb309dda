// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/tradelanes/batch"
	"github.com/katalvlaran/tradelanes/builder"
	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

func TestAllPairs_Sample(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tbl, err := batch.AllPairs(context.Background(), network.Sample(), batch.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, tbl.Planets)
	assert.Equal(t, 20, tbl.Len())
	// 0 reaches 4 planets, 1 reaches 3, 2 and 3 reach Zenith only.
	assert.Equal(t, 9, tbl.Reachable())

	res, ok := tbl.Lookup(network.SampleSource, network.SampleDestination)
	require.True(t, ok)
	assert.InDelta(t, 25.4, res.ExpectedCost, 1e-9)
	assert.Equal(t, []int{0, 1, 3, 4}, res.Path)

	res, ok = tbl.Lookup(4, 0)
	require.True(t, ok)
	assert.Equal(t, expected.Unreachable, res.Outcome)

	_, ok = tbl.Lookup(2, 2)
	assert.False(t, ok, "diagonal is not computed")
}

func TestAllPairs_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	n, err := builder.Build([]builder.Option{
		builder.WithSeed(42),
		builder.WithCostFn(builder.UniformCost(1, 30)),
		builder.WithFailureFn(builder.UniformFailure(0.5)),
	}, builder.RandomSparse(12, 0.25))
	require.NoError(t, err)

	tbl, err := batch.AllPairs(context.Background(), n, batch.WithWorkers(8))
	require.NoError(t, err)

	for _, cell := range tbl.Cells() {
		want, err := expected.ExpectedShortestPath(n, cell.Source, cell.Destination)
		require.NoError(t, err)
		if diff := cmp.Diff(want, cell.Result, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("%d→%d (-sequential +batch):\n%s", cell.Source, cell.Destination, diff)
		}
	}
}

func TestAllPairs_WorkerCountIrrelevant(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	n := network.Sample()
	one, err := batch.AllPairs(context.Background(), n, batch.WithWorkers(1))
	require.NoError(t, err)
	many, err := batch.AllPairs(context.Background(), n, batch.WithWorkers(16))
	require.NoError(t, err)

	if diff := cmp.Diff(one.Cells(), many.Cells()); diff != "" {
		t.Errorf("tables differ (-1 worker +16 workers):\n%s", diff)
	}
}

func TestAllPairs_OnResult(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var calls int64
	seen := make(map[batch.Pair]bool)
	tbl, err := batch.AllPairs(context.Background(), network.Sample(),
		batch.WithOnResult(func(c batch.Cell) {
			atomic.AddInt64(&calls, 1)
			seen[c.Pair] = true // serialized by AllPairs
		}),
	)
	require.NoError(t, err)
	assert.EqualValues(t, tbl.Len(), atomic.LoadInt64(&calls))
	assert.Len(t, seen, tbl.Len())
}

func TestAllPairs_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tbl, err := batch.AllPairs(ctx, network.Sample())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tbl)
}

func TestAllPairs_CancelMidRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	n, err := builder.Build(nil, builder.Ring(30))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls int64
	_, err = batch.AllPairs(ctx, n,
		batch.WithWorkers(2),
		batch.WithOnResult(func(batch.Cell) {
			if atomic.AddInt64(&calls, 1) == 5 {
				cancel()
			}
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, atomic.LoadInt64(&calls), int64(30*29))
}

func TestAllPairs_Validation(t *testing.T) {
	_, err := batch.AllPairs(context.Background(), nil)
	assert.ErrorIs(t, err, expected.ErrNilNetwork)

	_, err = batch.AllPairs(context.Background(), network.New())
	assert.ErrorIs(t, err, expected.ErrEmptyNetwork)

	assert.Panics(t, func() { batch.WithWorkers(0) })
}

func TestAllPairs_SinglePlanet(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddPlanet(7, "Lonely"))

	tbl, err := batch.AllPairs(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []int{7}, tbl.Planets)
}
