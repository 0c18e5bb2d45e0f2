package mst

import (
	"sort"

	"github.com/grafo-dev/grafo/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in
// ascending weight order and joining components with a disjoint-set
// forest (path compression + union by rank).
//
// Error conditions:
//   - ErrNilGraph      : g is nil.
//   - ErrNotUndirected : g is directed.
//   - ErrDisconnected  : g is empty or has more than one component.
//
// Steps:
//  1. Validate the graph; handle trivial sizes.
//  2. Sort a copy of the edge list by weight. The sort is stable, so
//     equal-weight edges keep their first-insertion order and the tree
//     is deterministic.
//  3. Walk the sorted edges: an edge whose endpoints lie in different
//     sets joins them and enters the tree.
//  4. Fewer than |V|-1 adopted edges means the graph is disconnected.
//
// Complexity: O(E log E + E α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrNotUndirected
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Copy and sort the edges by weight, stably.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Scan edges, merging components until the tree spans the graph.
	dsu := newDisjointSet(g.Vertices())
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range edges {
		if !dsu.union(e.From, e.To) {
			// Endpoints already connected; this edge would close a cycle.
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	// 4. A short tree means at least two components never merged.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest over vertex IDs with path
// compression and union by rank.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(vertices []int) *disjointSet {
	d := &disjointSet{
		parent: make(map[int]int, len(vertices)),
		rank:   make(map[int]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
	}

	return d
}

// find returns the root of u's set, compressing the path as it walks.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v. It reports false when they already
// share a root.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}
