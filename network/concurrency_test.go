// SPDX-License-Identifier: MIT

package network_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradelanes/network"
)

// TestConcurrentAddRoute ensures concurrent AddRoute calls are safe and none
// of them is lost.
func TestConcurrentAddRoute(t *testing.T) {
	n := network.New()
	const num = 200
	require.NoError(t, n.AddPlanet(0, "Hub"))
	for i := 1; i <= num; i++ {
		require.NoError(t, n.AddPlanet(i, ""))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = n.AddRoute(network.Route{From: 0, To: id, Cost: float64(id)})
		}(i)
	}
	wg.Wait()

	out, err := n.Outgoing(0)
	require.NoError(t, err)
	require.Len(t, out, num)
}

// TestConcurrentReadersAndWriter mixes queries with mutations; run with -race.
func TestConcurrentReadersAndWriter(t *testing.T) {
	n := network.Sample()
	const readers = 20

	var wg sync.WaitGroup
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		for i := 5; i < 55; i++ {
			_ = n.AddPlanet(i, "")
			_ = n.AddRoute(network.Route{From: i - 1, To: i, Cost: 1})
		}
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			_, _ = n.ReachableFrom(0)
			_ = n.Planets()
			_ = n.Adjacency()
			_ = n.Clone()
		}()
	}
	wg.Wait()
}
