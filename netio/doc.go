// SPDX-License-Identifier: MIT

// Package netio reads and writes scenario files: a planet network plus the
// source and destination of the route to compute.
//
// Three encodings are supported and share one schema:
//
//	YAML (.yaml, .yml)  github.com/goccy/go-yaml
//	TOML (.toml)        github.com/BurntSushi/toml
//	JSON (.json)        encoding/json
//
// YAML example:
//
//	source: 0
//	destination: 4
//	planets:
//	  - {id: 0, name: Earth}
//	  - {id: 4, name: Zenith}
//	routes:
//	  - {from: 0, to: 4, cost: 20, failure_probability: 0.15}
//
// Unknown keys are rejected in every format so that a misspelled
// failure_probability does not silently become 0.
//
// Validate applies the rules the interactive route form used to enforce:
// at least two planets, at least one route, distinct source and destination,
// and failure probabilities in [0, 1).
package netio
