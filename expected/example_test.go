// SPDX-License-Identifier: MIT

package expected_test

import (
	"fmt"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

// ExampleExpectedShortestPath computes the demo route from Earth to Zenith.
func ExampleExpectedShortestPath() {
	res, err := expected.ExpectedShortestPath(network.Sample(), network.SampleSource, network.SampleDestination)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.2f path=%v\n", res.ExpectedCost, res.Path)
	// Output: cost=25.40 path=[0 1 3 4]
}

// ExampleExpectedShortestPath_unreachable shows the failure result.
func ExampleExpectedShortestPath_unreachable() {
	res, _ := expected.ExpectedShortestPath(network.Sample(), network.SampleDestination, network.SampleSource)
	fmt.Println(res.Success(), res.Message)
	// Output: false No viable path exists to the destination.
}
