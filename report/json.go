// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

// Document is the JSON form of a result.
type Document struct {
	Success      bool     `json:"success"`
	Outcome      string   `json:"outcome"`
	ExpectedCost float64  `json:"expectedCost"`
	Path         []int    `json:"path"`
	PathNames    []string `json:"pathNames"`
	Message      string   `json:"message,omitempty"`
}

// NewDocument converts res into a Document, resolving names through n.
func NewDocument(n *network.Network, res expected.Result) Document {
	path := res.Path
	if path == nil {
		path = []int{}
	}

	return Document{
		Success:      res.Success(),
		Outcome:      res.Outcome.String(),
		ExpectedCost: res.ExpectedCost,
		Path:         path,
		PathNames:    PathNames(n, path),
		Message:      res.Message,
	}
}

// JSON writes res as an indented Document.
func JSON(w io.Writer, n *network.Network, res expected.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(n, res))
}
