// SPDX-License-Identifier: MIT

// Package report renders expected-cost results for people and tools.
//
// Writers:
//
//	Text   – human summary: expected cost with two decimals and the path as
//	         planet names ("Unknown (id)" for IDs without a planet).
//	JSON   – machine-readable result, including the path names.
//	DOT    – Graphviz digraph of the network with the path highlighted.
//	SVG    – standalone drawing on a circular layout: routes with cost and
//	         failure labels, planets coloured by role.
//	Table  – one line per batch.Table cell.
//
// Every writer returns the first write error it meets and writes nothing
// else after it.
package report
