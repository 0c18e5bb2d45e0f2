// Package mst computes minimum spanning trees of undirected, weighted
// graphs. Two classic algorithms are provided: Prim (grow from a root
// vertex using a min-heap) and Kruskal (sort all edges, merge components
// with a disjoint-set forest).
//
// Both algorithms require a connected, undirected graph and agree on the
// total weight; the edge sets may differ only when equal-weight edges
// admit several optimal trees. Ties are always broken the same way, so a
// given graph produces the same tree on every run.
package mst

import (
	"errors"

	"github.com/grafo-dev/grafo/core"
)

// ErrNilGraph is returned when the graph argument is nil.
var ErrNilGraph = errors.New("mst: nil graph")

// ErrNotUndirected is returned when a directed graph is supplied.
// Spanning trees are defined over undirected graphs only.
var ErrNotUndirected = errors.New("mst: graph must be undirected")

// ErrDisconnected is returned when no spanning tree covering every
// vertex exists, i.e. the graph has more than one connected component.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// Options selects the algorithm to run and, for Prim, the root vertex.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Ignored by Kruskal.
	Root int
}

// Option mutates Options.
type Option func(*Options)

// WithMethod sets the algorithm to run.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's starting vertex. Kruskal ignores it.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns the default configuration: Prim rooted at
// vertex 0.
func DefaultOptions() Options {
	return Options{Method: MethodPrim, Root: 0}
}

// Compute dispatches to Prim or Kruskal according to opts.
//
// Returns the tree edges, their total weight, and an error for an
// invalid graph, an unknown method, or a disconnected input.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodPrim:
		return Prim(g, o.Root)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return nil, 0, errors.New("mst: unknown method " + o.Method)
	}
}
