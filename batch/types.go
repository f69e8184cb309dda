// SPDX-License-Identifier: MIT

package batch

import (
	"runtime"
	"sort"
	"time"

	"github.com/katalvlaran/tradelanes/expected"
)

// releaseTimeout bounds how long AllPairs waits for pool workers to exit.
const releaseTimeout = 5 * time.Second

// Pair is an ordered (source, destination) query.
type Pair struct {
	Source      int
	Destination int
}

// Cell is one computed table entry.
type Cell struct {
	Pair
	Result expected.Result
}

// Table holds the results of an all-pairs run.
type Table struct {
	// Planets lists the planet IDs covered, ascending.
	Planets []int

	cells map[Pair]expected.Result
}

func newTable(ids []int) *Table {
	return &Table{
		Planets: ids,
		cells:   make(map[Pair]expected.Result, len(ids)*(len(ids)-1)),
	}
}

// Lookup returns the result for source→destination. The second value is false
// for pairs not in the table, including source == destination.
func (t *Table) Lookup(source, destination int) (expected.Result, bool) {
	res, ok := t.cells[Pair{Source: source, Destination: destination}]
	return res, ok
}

// Len returns the number of cells.
func (t *Table) Len() int { return len(t.cells) }

// Reachable counts the cells whose result is Found.
func (t *Table) Reachable() int {
	count := 0
	for _, res := range t.cells {
		if res.Success() {
			count++
		}
	}

	return count
}

// Cells returns every cell ordered by source, then destination.
func (t *Table) Cells() []Cell {
	out := make([]Cell, 0, len(t.cells))
	for p, res := range t.cells {
		out = append(out, Cell{Pair: p, Result: res})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Destination < out[j].Destination
	})

	return out
}

// Options configures AllPairs.
//
// Workers  – pool size; defaults to runtime.NumCPU().
// OnResult – called once per computed cell. Calls are serialized but arrive
// in completion order, not table order.
type Options struct {
	Workers  int
	OnResult func(Cell)
}

// Option represents a functional option for AllPairs.
type Option func(*Options)

// WithWorkers sets the pool size. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("batch: WithWorkers requires k >= 1")
	}
	return func(o *Options) { o.Workers = k }
}

// WithOnResult registers a per-cell hook. A nil fn is ignored.
func WithOnResult(fn func(Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}

// DefaultOptions returns the AllPairs defaults.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.NumCPU(),
		OnResult: func(Cell) {},
	}
}
