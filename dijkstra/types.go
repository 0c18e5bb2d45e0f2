// Package dijkstra computes minimum-total-weight paths on graphs with
// non-negative edge weights, for a single pair and for a single source to
// every reachable vertex.
//
// The implementation processes vertices in order of increasing tentative
// distance using a min-heap with the lazy decrease-key strategy: improved
// distances push duplicate entries, and stale entries are skipped when
// popped. Neighbors are relaxed in the store's ascending order, and heap
// ties break on the lower vertex ID, so results are fully deterministic —
// when multiple shortest paths exist, the one found under this fixed
// relaxation order is returned.
//
// Negative weights make the greedy invariant unsound, so every query scans
// the edge set up front and fails fast with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — V extractions, up to E lazy pushes.
//   - Space: O(V + E) — distance/predecessor maps and the heap.
package dijkstra

import "errors"

// Sentinel errors returned by the shortest-path queries.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source or target vertex is absent.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrNegativeWeight indicates a negative edge weight was detected;
	// Dijkstra's greedy expansion is only correct for non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// NoPrev marks the absence of a predecessor (the source entry).
const NoPrev = -1

// Path is an ordered walk from source to target inclusive, with the sum of
// edge weights along it. A trivial source == target path has one vertex
// and weight 0.
type Path struct {
	Vertices []int
	Weight   float64
}

// Distance is one entry of the single-source result: the minimum total
// weight to the vertex and its predecessor on that path (NoPrev for the
// source itself). Unreachable vertices never appear in the map — absence
// is the unreachable marker, no sentinel weight leaks out.
type Distance struct {
	Weight float64
	Prev   int
}
