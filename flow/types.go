// Package flow computes maximum flow in directed, capacitated graphs
// with the Edmonds–Karp algorithm (Ford–Fulkerson driven by BFS, so
// each augmenting path has the fewest possible edges).
//
// Edge weights are read as capacities and must be non-negative. The
// result reports both the flow value and the per-edge flow assignment
// in the graph's edge order.
package flow

import (
	"errors"
)

// ErrNilGraph is returned when the graph argument is nil.
var ErrNilGraph = errors.New("flow: nil graph")

// ErrNotDirected is returned when an undirected graph is supplied.
// Capacities are oriented, so flow networks must be directed.
var ErrNotDirected = errors.New("flow: graph must be directed")

// ErrSourceNotFound is returned when the source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrNegativeCapacity is returned when any edge carries a negative
// weight. Detected before any augmentation runs.
var ErrNegativeCapacity = errors.New("flow: negative edge capacity")

// FlowEdge reports the flow pushed through one original edge.
type FlowEdge struct {
	From     int
	To       int
	Capacity float64
	Flow     float64
}

// Result holds a maximum flow: its value and the assignment that
// realizes it, listed in the graph's edge order.
type Result struct {
	MaxFlow float64
	Edges   []FlowEdge
}
