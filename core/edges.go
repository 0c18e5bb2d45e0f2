// File: edges.go
// Role: edge lifecycle and queries.
// Determinism:
//   - Edges() preserves first-insertion order of logical edges.
//   - Neighbors() enumerates ascending by neighbor ID — the relaxation
//     order shortest-path and MST algorithms depend on.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the edge u→v (u—v when undirected) with the given weight,
// or overwrites the weight if the pair already has an edge. The overwritten
// edge keeps its original position in the listing order.
//
// Errors:
//   - ErrSelfLoop if u == v.
//   - ErrVertexNotFound if either endpoint is absent; nothing is inserted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	// 1) Validate endpoints before touching any state: a failed AddEdge
	//    must leave the store exactly as it was.
	if u == v {
		return fmt.Errorf("%w: edge %d→%d", ErrSelfLoop, u, v)
	}
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	// 2) Insert or overwrite per the pair-uniqueness invariant.
	g.putEdge(u, v, weight)

	return nil
}

// putEdge performs the unvalidated insert-or-overwrite shared by AddEdge
// and Load. Endpoints must exist and differ.
func (g *Graph) putEdge(u, v int, weight float64) {
	k := g.key(u, v)
	_, existed := g.adj[u][v]
	if !g.directed && !existed {
		// An undirected pair may have been inserted the other way round.
		_, existed = g.adj[v][u]
	}

	g.setWeight(u, v, weight)
	if !g.directed {
		g.setWeight(v, u, weight)
	}
	if !existed {
		g.order = append(g.order, k)
	}
}

// setWeight writes one direction of the adjacency map.
func (g *Graph) setWeight(from, to int, weight float64) {
	row, ok := g.adj[from]
	if !ok {
		row = make(map[int]float64)
		g.adj[from] = row
	}
	row[to] = weight
}

// RemoveEdge deletes the one logical edge between u and v (and its mirror
// when undirected). Removing an absent edge is an error, not a silent no-op.
//
// Errors:
//   - ErrEdgeNotFound if the pair has no edge; the graph is unchanged.
//
// Complexity: O(E) — the listing order is compacted.
func (g *Graph) RemoveEdge(u, v int) error {
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
	}

	delete(g.adj[u], v)
	if len(g.adj[u]) == 0 {
		delete(g.adj, u)
	}
	if !g.directed {
		delete(g.adj[v], u)
		if len(g.adj[v]) == 0 {
			delete(g.adj, v)
		}
	}

	k := g.key(u, v)
	kept := g.order[:0]
	var o edgeKey
	for _, o = range g.order {
		if o != k {
			kept = append(kept, o)
		}
	}
	g.order = kept

	return nil
}

// HasEdge reports whether an edge u→v exists (either direction matches in
// an undirected graph). Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Weight returns the weight of the edge u→v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// Edges returns every logical edge in first-insertion order. Undirected
// edges are listed once with From <= To.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.order))
	var k edgeKey
	for _, k = range g.order {
		out = append(out, Edge{From: k.u, To: k.v, Weight: g.adj[k.u][k.v]})
	}

	return out
}

// EdgeCount returns the number of logical edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.order) }

// Neighbors returns the edges leaving id — outgoing arcs in a directed
// graph, all incident edges in an undirected one — ordered ascending by
// neighbor ID. From is always id, so callers can walk e.To directly.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	row := g.adj[id]
	out := make([]Edge, 0, len(row))
	var to int
	var w float64
	for to, w = range row {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}
