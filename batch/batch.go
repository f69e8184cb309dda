// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

// AllPairs runs expected.ExpectedShortestPath for every ordered pair of
// distinct planets of n and returns the collected Table.
//
// Errors: expected.ErrNilNetwork, expected.ErrEmptyNetwork, ctx.Err() on
// cancellation, the first error returned by a computation (for example when n
// loses a planet mid-run), and pool creation or release failures.
func AllPairs(ctx context.Context, n *network.Network, opts ...Option) (tbl *Table, err error) {
	if n == nil {
		return nil, expected.ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	planets := n.Planets()
	if len(planets) == 0 {
		return nil, expected.ErrEmptyNetwork
	}
	ids := make([]int, len(planets))
	for i, p := range planets {
		ids[i] = p.ID
	}

	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("batch: new pool: %w", err)
	}
	defer func() {
		if rerr := pool.ReleaseTimeout(releaseTimeout); rerr != nil && err == nil {
			tbl, err = nil, fmt.Errorf("batch: release pool: %w", rerr)
		}
	}()

	t := newTable(ids)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(e error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = e
		}
		mu.Unlock()
	}

submit:
	for _, src := range ids {
		for _, dst := range ids {
			if src == dst {
				continue
			}
			if ctx.Err() != nil {
				break submit
			}
			pair := Pair{Source: src, Destination: dst}

			wg.Add(1)
			serr := pool.Submit(func() {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				res, cerr := expected.ExpectedShortestPath(n, pair.Source, pair.Destination)
				if cerr != nil {
					fail(fmt.Errorf("batch: %d→%d: %w", pair.Source, pair.Destination, cerr))
					return
				}
				mu.Lock()
				defer mu.Unlock()
				t.cells[pair] = res
				o.OnResult(Cell{Pair: pair, Result: res})
			})
			if serr != nil {
				wg.Done()
				fail(fmt.Errorf("batch: submit: %w", serr))
				break submit
			}
		}
	}
	wg.Wait()

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return t, nil
}
