// File: vertices.go
// Role: vertex lifecycle and queries.
// Determinism: Vertices() returns IDs in ascending numeric order.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new isolated vertex.
//
// Errors:
//   - ErrVertexOutOfRange if id < 0.
//   - ErrDuplicateVertex if the vertex already exists.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, id)
	}
	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]
	return ok
}

// RemoveVertex deletes a vertex and every incident edge (both directions in
// a directed graph). The edge count shrinks silently as a side effect.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent; the graph is unchanged.
//
// Complexity: O(V + E) — incident adjacency rows and the edge listing are
// both swept once.
func (g *Graph) RemoveVertex(id int) error {
	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	// 1) Drop the vertex and its outgoing adjacency row.
	delete(g.vertices, id)
	delete(g.adj, id)

	// 2) Drop edges pointing at id from the remaining rows.
	for from, row := range g.adj {
		delete(row, id)
		if len(row) == 0 {
			delete(g.adj, from)
		}
	}

	// 3) Compact the listing order, keeping relative positions.
	kept := g.order[:0]
	var k edgeKey
	for _, k = range g.order {
		if k.u != id && k.v != id {
			kept = append(kept, k)
		}
	}
	g.order = kept

	return nil
}

// Vertices returns all vertex IDs in ascending order — the stable
// enumeration surface algorithms seed their traversals from.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	var id int
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }
