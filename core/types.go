// File: types.go
// Role: Graph, Edge and EdgeDecl types, sentinel errors, NewGraph and the
//       bulk Load constructor.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge with identical endpoints was rejected.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrVertexOutOfRange indicates a negative vertex ID, or a Load edge
	// endpoint outside the declared vertex range 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one logical edge of the graph: endpoints From→To and a real
// weight. In an undirected graph the edge is stored once and reported with
// From <= To; it is traversable in both directions.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// EdgeDecl is one edge declaration consumed by Load, typically produced by
// the graphfile parser. Weight carries the file's value or the 1.0 default.
type EdgeDecl struct {
	From   int
	To     int
	Weight float64
}

// edgeKey is the canonical map/listing key of a logical edge:
// as inserted for directed graphs, (min,max) for undirected ones.
type edgeKey struct{ u, v int }

// Graph is the in-memory graph store. The directed flag is fixed at
// construction; every mutation keeps the package invariants (see doc.go).
//
// Not safe for concurrent use: one session owns one Graph.
type Graph struct {
	directed bool

	vertices map[int]struct{}
	// adj[from][to] = weight; undirected edges are mirrored so that
	// adjacency queries work symmetrically.
	adj map[int]map[int]float64
	// order preserves first-insertion order of logical edges for
	// deterministic Edges() output.
	order []edgeKey
}

// NewGraph returns an empty graph of the requested mode. Always succeeds.
// Complexity: O(1).
func NewGraph(directed bool) *Graph {
	return &Graph{
		directed: directed,
		vertices: make(map[int]struct{}),
		adj:      make(map[int]map[int]float64),
	}
}

// Load builds a fresh graph with vertices 0..vertexCount-1 and the given
// edge declarations, applying "last definition wins" per (ordered /
// unordered) pair in declaration order.
//
// Edge endpoints outside the declared range are rejected with
// ErrVertexOutOfRange: the declared count is a bound, not a hint.
// A negative vertexCount is likewise ErrVertexOutOfRange.
//
// On any error the returned graph is nil; a previously loaded graph held by
// the caller stays untouched (bulk load is all-or-nothing).
//
// Complexity: O(n + d) for n declared vertices and d declarations.
func Load(directed bool, vertexCount int, edges []EdgeDecl) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: declared vertex count %d", ErrVertexOutOfRange, vertexCount)
	}

	g := NewGraph(directed)
	for id := 0; id < vertexCount; id++ {
		g.vertices[id] = struct{}{}
	}

	var d EdgeDecl
	for _, d = range edges {
		if d.From < 0 || d.From >= vertexCount {
			return nil, fmt.Errorf("%w: edge endpoint %d not in 0..%d", ErrVertexOutOfRange, d.From, vertexCount-1)
		}
		if d.To < 0 || d.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge endpoint %d not in 0..%d", ErrVertexOutOfRange, d.To, vertexCount-1)
		}
		if d.From == d.To {
			return nil, fmt.Errorf("%w: edge %d→%d", ErrSelfLoop, d.From, d.To)
		}
		g.putEdge(d.From, d.To, d.Weight)
	}

	return g, nil
}

// Directed reports the graph's mode, fixed at construction.
func (g *Graph) Directed() bool { return g.directed }

// key canonicalizes a vertex pair into the logical edge key.
func (g *Graph) key(u, v int) edgeKey {
	if !g.directed && u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}
