// SPDX-License-Identifier: MIT

// Package layout assigns display coordinates to the planets of a network.
//
// Coordinates have no meaning to any path computation; they exist so renderers
// (see package report) can draw the network. Points are orb.Point values
// (X, Y) in an SVG-style coordinate space where Y grows downwards.
package layout

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/tradelanes/network"
)

// Default circle parameters.
const (
	DefaultCenterX = 300.0
	DefaultCenterY = 300.0
	DefaultRadius  = 250.0
)

// Placement pairs a planet with its coordinates.
type Placement struct {
	Planet network.Planet
	Point  orb.Point
}

// Layout is an ordered set of placements, one per planet, in ascending planet
// ID order.
type Layout struct {
	Placements []Placement
	index      map[int]int
}

// Options configures Circular.
type Options struct {
	Center orb.Point
	Radius float64
}

// Option represents a functional option for Circular.
type Option func(*Options)

// WithCenter moves the circle's center.
func WithCenter(x, y float64) Option {
	return func(o *Options) {
		o.Center = orb.Point{x, y}
	}
}

// WithRadius sets the circle radius. Panics on a non-positive or non-finite
// radius.
func WithRadius(r float64) Option {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("layout: WithRadius requires a positive finite radius")
	}
	return func(o *Options) {
		o.Radius = r
	}
}

// DefaultOptions returns the default circle: center (300, 300), radius 250.
func DefaultOptions() Options {
	return Options{
		Center: orb.Point{DefaultCenterX, DefaultCenterY},
		Radius: DefaultRadius,
	}
}

// Circular places the planets of n evenly on a circle. The planet at position i
// of n.Planets() lands at angle 2πi/N, starting at the positive X axis.
// A nil or empty network yields an empty Layout.
// Complexity: O(V log V).
func Circular(n *network.Network, opts ...Option) Layout {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lay := Layout{index: map[int]int{}}
	if n == nil {
		return lay
	}

	planets := n.Planets()
	total := float64(len(planets))
	lay.Placements = make([]Placement, len(planets))
	for i, p := range planets {
		angle := 2 * math.Pi * float64(i) / total
		lay.Placements[i] = Placement{
			Planet: p,
			Point: orb.Point{
				cfg.Center.X() + cfg.Radius*math.Cos(angle),
				cfg.Center.Y() + cfg.Radius*math.Sin(angle),
			},
		}
		lay.index[p.ID] = i
	}

	return lay
}

// Point returns the coordinates of planet id.
func (l Layout) Point(id int) (orb.Point, bool) {
	i, ok := l.index[id]
	if !ok {
		return orb.Point{}, false
	}

	return l.Placements[i].Point, true
}

// Bound returns the bounding box of every placement. An empty layout yields
// the zero orb.Bound.
func (l Layout) Bound() orb.Bound {
	if len(l.Placements) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(l.Placements))
	for i, pl := range l.Placements {
		mp[i] = pl.Point
	}

	return mp.Bound()
}
