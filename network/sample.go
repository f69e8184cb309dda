// SPDX-License-Identifier: MIT

package network

// Sample source and destination used with the Sample network.
const (
	SampleSource      = 0 // Earth
	SampleDestination = 4 // Zenith
)

// Sample returns the five-planet demonstration network.
//
//	Earth(0)   → Mars(1)     cost 10, p 0.10
//	Earth(0)   → Jupiter(2)  cost 15, p 0.20
//	Mars(1)    → Saturn(3)   cost 12, p 0.10
//	Mars(1)    → Jupiter(2)  cost  5, p 0.05
//	Jupiter(2) → Zenith(4)   cost 20, p 0.15
//	Saturn(3)  → Zenith(4)   cost  8, p 0.30
func Sample() *Network {
	n := New()
	for _, p := range []Planet{
		{0, "Earth"},
		{1, "Mars"},
		{2, "Jupiter"},
		{3, "Saturn"},
		{4, "Zenith"},
	} {
		// IDs are distinct and non-negative; AddPlanet cannot fail here.
		_ = n.AddPlanet(p.ID, p.Name)
	}
	for _, r := range []Route{
		{From: 0, To: 1, Cost: 10, FailureProbability: 0.1},
		{From: 0, To: 2, Cost: 15, FailureProbability: 0.2},
		{From: 1, To: 3, Cost: 12, FailureProbability: 0.1},
		{From: 1, To: 2, Cost: 5, FailureProbability: 0.05},
		{From: 2, To: 4, Cost: 20, FailureProbability: 0.15},
		{From: 3, To: 4, Cost: 8, FailureProbability: 0.3},
	} {
		_ = n.AddRoute(r)
	}

	return n
}
