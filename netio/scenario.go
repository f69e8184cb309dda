// SPDX-License-Identifier: MIT

package netio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tradelanes/network"
)

// Sentinel errors for scenario validation and decoding.
var (
	// ErrTooFewPlanets indicates a scenario with fewer than two planets.
	ErrTooFewPlanets = errors.New("netio: at least two planets are required")

	// ErrNoRoutes indicates a scenario without routes.
	ErrNoRoutes = errors.New("netio: at least one route is required")

	// ErrSameEndpoints indicates that source and destination are the same planet.
	ErrSameEndpoints = errors.New("netio: source and destination must be different")

	// ErrUnknownFormat indicates an unsupported encoding or file extension.
	ErrUnknownFormat = errors.New("netio: unknown scenario format")

	// ErrUnknownField indicates a key the schema does not define.
	ErrUnknownField = errors.New("netio: unknown field")
)

// PlanetSpec is the serialized form of a planet.
type PlanetSpec struct {
	ID   int    `yaml:"id" toml:"id" json:"id"`
	Name string `yaml:"name" toml:"name" json:"name"`
}

// RouteSpec is the serialized form of a route.
type RouteSpec struct {
	From               int     `yaml:"from" toml:"from" json:"from"`
	To                 int     `yaml:"to" toml:"to" json:"to"`
	Cost               float64 `yaml:"cost" toml:"cost" json:"cost"`
	FailureProbability float64 `yaml:"failure_probability" toml:"failure_probability" json:"failure_probability"`
}

// Scenario is a network plus one route query.
type Scenario struct {
	Source      int          `yaml:"source" toml:"source" json:"source"`
	Destination int          `yaml:"destination" toml:"destination" json:"destination"`
	Planets     []PlanetSpec `yaml:"planets" toml:"planets" json:"planets"`
	Routes      []RouteSpec  `yaml:"routes" toml:"routes" json:"routes"`
}

// FromNetwork captures n and the query (source, destination) as a Scenario.
// Planets are listed by ascending ID and routes in insertion order.
func FromNetwork(n *network.Network, source, destination int) *Scenario {
	s := &Scenario{Source: source, Destination: destination}
	for _, p := range n.Planets() {
		s.Planets = append(s.Planets, PlanetSpec{ID: p.ID, Name: p.Name})
	}
	for _, r := range n.Routes() {
		s.Routes = append(s.Routes, RouteSpec{
			From:               r.From,
			To:                 r.To,
			Cost:               r.Cost,
			FailureProbability: r.FailureProbability,
		})
	}

	return s
}

// Network builds a network.Network from the scenario's planets and routes.
// The query fields are not checked; use Validate for that.
func (s *Scenario) Network() (*network.Network, error) {
	n := network.New()
	for i, p := range s.Planets {
		if err := n.AddPlanet(p.ID, p.Name); err != nil {
			return nil, fmt.Errorf("netio: planet #%d: %w", i, err)
		}
	}
	for i, r := range s.Routes {
		err := n.AddRoute(network.Route{
			From:               r.From,
			To:                 r.To,
			Cost:               r.Cost,
			FailureProbability: r.FailureProbability,
		})
		if err != nil {
			return nil, fmt.Errorf("netio: route #%d: %w", i, err)
		}
	}

	return n, nil
}

// Validate checks the scenario against the route form rules and returns the
// first violation:
//  1. at least two planets (ErrTooFewPlanets);
//  2. at least one route (ErrNoRoutes);
//  3. source != destination (ErrSameEndpoints);
//  4. every planet and route is valid (network errors);
//  5. source and destination are planets (network.ErrPlanetNotFound).
func (s *Scenario) Validate() error {
	_, err := s.Resolve()
	return err
}

// Resolve validates the scenario and returns its network.
func (s *Scenario) Resolve() (*network.Network, error) {
	if len(s.Planets) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlanets, len(s.Planets))
	}
	if len(s.Routes) == 0 {
		return nil, ErrNoRoutes
	}
	if s.Source == s.Destination {
		return nil, fmt.Errorf("%w: %d", ErrSameEndpoints, s.Source)
	}

	n, err := s.Network()
	if err != nil {
		return nil, err
	}
	if !n.HasPlanet(s.Source) {
		return nil, fmt.Errorf("netio: source: %w: %d", network.ErrPlanetNotFound, s.Source)
	}
	if !n.HasPlanet(s.Destination) {
		return nil, fmt.Errorf("netio: destination: %w: %d", network.ErrPlanetNotFound, s.Destination)
	}

	return n, nil
}
