// Package dag holds the directed acyclic graph underpinning the task graph.
// It stores only topology: nodes keyed by string ID and directed edges
// between them. Cycle detection and deterministic topological ordering are
// the two operations the materialize phase relies on.
package dag
