package connectivity

import (
	"sort"

	"github.com/grafo-dev/grafo/core"
)

// IsConnected reports whether g forms at most one component under the
// selected policy. The empty graph is connected by convention.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	groups, err := Components(g, opts...)
	if err != nil {
		return false, err
	}

	return len(groups) <= 1, nil
}

// Components partitions all vertices into maximal connected groups. Each
// vertex appears in exactly one group; groups are ordered by their
// first-visited representative (ascending seed scan), members ascending.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g.Directed() && o.Policy == PolicyStrong {
		return strongComponents(g), nil
	}

	return weakComponents(g), nil
}

// weakComponents groups vertices reachable from one another when edge
// direction is ignored.
func weakComponents(g *core.Graph) [][]int {
	// Symmetric adjacency built from the edge snapshot; for undirected
	// graphs this mirrors the store, for directed ones it forgets arrows.
	adj := make(map[int][]int, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	visited := make(map[int]bool, g.VertexCount())
	var groups [][]int

	for _, seed := range g.Vertices() {
		if visited[seed] {
			continue
		}

		// Plain stack traversal from the seed.
		group := []int{}
		stack := []int{seed}
		visited[seed] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, v)

			for _, u := range adj[v] {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}

		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups
}

// strongComponents implements Kosaraju's algorithm: an ascending-seed DFS
// records finish order on the forward graph, then a second sweep over the
// reversed graph in reverse finish order peels off one SCC per seed.
func strongComponents(g *core.Graph) [][]int {
	fwd := make(map[int][]int, g.VertexCount())
	rev := make(map[int][]int, g.VertexCount())
	for _, e := range g.Edges() {
		fwd[e.From] = append(fwd[e.From], e.To)
		rev[e.To] = append(rev[e.To], e.From)
	}

	// Pass 1: postorder (finish order) over the forward graph.
	visited := make(map[int]bool, g.VertexCount())
	finish := make([]int, 0, g.VertexCount())
	for _, seed := range g.Vertices() {
		if !visited[seed] {
			postorder(seed, fwd, visited, &finish)
		}
	}

	// Pass 2: reversed graph, seeds in reverse finish order.
	visited = make(map[int]bool, g.VertexCount())
	var groups [][]int
	for i := len(finish) - 1; i >= 0; i-- {
		seed := finish[i]
		if visited[seed] {
			continue
		}

		group := []int{}
		stack := []int{seed}
		visited[seed] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, v)
			for _, u := range rev[v] {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}

		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups
}

// postorder runs an iterative DFS from seed, appending each vertex to out
// once all its descendants are finished.
func postorder(seed int, adj map[int][]int, visited map[int]bool, out *[]int) {
	type frame struct {
		v    int
		next int // index of the next neighbor to expand
	}

	visited[seed] = true
	stack := []frame{{v: seed}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := adj[top.v]

		advanced := false
		for top.next < len(nbrs) {
			u := nbrs[top.next]
			top.next++
			if !visited[u] {
				visited[u] = true
				stack = append(stack, frame{v: u})
				advanced = true
				break
			}
		}
		if !advanced {
			*out = append(*out, top.v)
			stack = stack[:len(stack)-1]
		}
	}
}
