package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/grafo-dev/grafo/core"
)

// ShortestPath computes the minimum-total-weight path from source to
// target.
//
// Steps:
//  1. Validate the graph, both endpoints, and the absence of negative
//     weights (upfront O(E) scan, fail fast).
//  2. Run the heap loop, stopping as soon as target is finalized.
//  3. Reconstruct the vertex sequence from the predecessor map.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound on invalid input.
//   - ErrNegativeWeight if any edge weight is negative.
//   - ErrNoPath if target is unreachable from source.
//
// source == target yields the trivial single-vertex path of weight 0.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, source, target int) (Path, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return Path{}, err
	}
	if !g.HasVertex(target) {
		return Path{}, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	if err = r.process(target, true); err != nil {
		return Path{}, err
	}

	d, reached := r.dist[target]
	if !reached {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	// Walk predecessors back from target, then reverse in place.
	vertices := []int{target}
	for v := target; v != source; {
		v = r.prev[v]
		vertices = append(vertices, v)
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}

	return Path{Vertices: vertices, Weight: d}, nil
}

// Distances computes single-source shortest distances to every reachable
// vertex: the same loop as ShortestPath, run to completion. Each entry
// carries the total weight and the predecessor on the shortest path
// (NoPrev for the source). Unreachable vertices are omitted.
//
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, source int) (map[int]Distance, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return nil, err
	}

	if err = r.process(0, false); err != nil {
		return nil, err
	}

	out := make(map[int]Distance, len(r.dist))
	for v, d := range r.dist {
		prev, ok := r.prev[v]
		if !ok {
			prev = NoPrev
		}
		out[v] = Distance{Weight: d, Prev: prev}
	}

	return out, nil
}

// runner holds the mutable state of one execution.
type runner struct {
	g       *core.Graph
	source  int
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

// newRunner validates inputs, scans for negative weights, and seeds the
// heap with the source at distance zero.
func newRunner(g *core.Graph, source int) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// Fail fast on negative weights before any relaxation happens.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[int]float64, n),
		prev:    make(map[int]int, n),
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r, nil
}

// process runs the main loop. With stopAtTarget set, the loop ends as soon
// as target's distance is final; otherwise it drains the heap.
func (r *runner) process(target int, stopAtTarget bool) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale lazy-decrease-key entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if stopAtTarget && u == target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves tentative distances over u's outgoing edges, visiting
// neighbors in the store's ascending order.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var e core.Edge
	for _, e = range neighbors {
		v := e.To
		newDist := r.dist[u] + e.Weight

		if best, seen := r.dist[v]; seen && newDist >= best {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem; ties on distance break on the lower
// vertex ID to keep extraction order deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
