// Package matching provides a two-coloring bipartiteness test and
// maximum-cardinality bipartite matching via the Hopcroft–Karp
// algorithm. Both operate on undirected graphs; edge weights are
// ignored.
package matching

import (
	"errors"
)

// ErrNilGraph is returned when the graph argument is nil.
var ErrNilGraph = errors.New("matching: nil graph")

// ErrNotUndirected is returned when a directed graph is supplied.
var ErrNotUndirected = errors.New("matching: graph must be undirected")

// ErrNotBipartite is returned by MaxMatching when the graph admits no
// two-coloring, i.e. it contains an odd cycle.
var ErrNotBipartite = errors.New("matching: graph is not bipartite")

// Side labels a vertex's partition in a two-coloring.
type Side int

const (
	// Left is the side assigned to each component's lowest-ID vertex.
	Left Side = iota
	// Right is the opposite side.
	Right
)

// Pair is one matched edge, always oriented Left→Right.
type Pair struct {
	Left  int
	Right int
}
