package matching

import (
	"math"

	"github.com/grafo-dev/grafo/core"
)

// IsBipartite reports whether g admits a two-coloring and, when it
// does, returns one: each component's lowest-ID vertex lands on Left
// and the coloring alternates outward from there. On an odd cycle the
// coloring is nil.
//
// Isolated vertices are colored Left. The empty graph is bipartite.
//
// Complexity: O(V + E) time and memory.
func IsBipartite(g *core.Graph) (bool, map[int]Side, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}
	if g.Directed() {
		return false, nil, ErrNotUndirected
	}

	// BFS coloring, component by component in ascending seed order.
	sides := make(map[int]Side, g.VertexCount())
	for _, seed := range g.Vertices() {
		if _, seen := sides[seed]; seen {
			continue
		}
		sides[seed] = Left
		queue := []int{seed}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return false, nil, err
			}
			for _, e := range neighbors {
				side, seen := sides[e.To]
				if !seen {
					sides[e.To] = opposite(sides[u])
					queue = append(queue, e.To)
					continue
				}
				if side == sides[u] {
					// Two adjacent vertices share a color: odd cycle.
					return false, nil, nil
				}
			}
		}
	}

	return true, sides, nil
}

// MaxMatching computes a maximum-cardinality matching of a bipartite
// graph with the Hopcroft–Karp algorithm. The pairs are reported in
// ascending order of their Left vertex.
//
// Error conditions:
//   - ErrNilGraph      : g is nil.
//   - ErrNotUndirected : g is directed.
//   - ErrNotBipartite  : g contains an odd cycle.
//
// Steps:
//  1. Two-color the graph; the coloring fixes the two partitions.
//  2. Orient every edge Left→Right.
//  3. Phase loop: a BFS from all free Left vertices layers the
//     alternating-path forest; DFS passes then flip every
//     vertex-disjoint shortest augmenting path found in those layers.
//  4. Stop when BFS finds no augmenting path.
//
// Complexity: O(E · √V) time, O(V + E) memory.
func MaxMatching(g *core.Graph) ([]Pair, error) {
	// 1. The coloring decides the partitions (and validates g).
	ok, sides, err := IsBipartite(g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotBipartite
	}

	// 2. Dense indices and Left→Right adjacency. Vertices() is
	//    ascending and Neighbors() sorts by endpoint, so the arc lists
	//    and therefore the matching are deterministic.
	vertices := g.Vertices()
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	n := len(vertices)
	adj := make([][]int, n)
	var left []int
	for i, v := range vertices {
		if sides[v] != Left {
			continue
		}
		left = append(left, i)
		neighbors, nerr := g.Neighbors(v)
		if nerr != nil {
			return nil, nerr
		}
		for _, e := range neighbors {
			adj[i] = append(adj[i], index[e.To])
		}
	}

	// 3-4. Alternate BFS layering and DFS augmentation until no
	//      augmenting path remains.
	m := &matcher{
		adj:       adj,
		left:      left,
		pairLeft:  filled(n, unmatched),
		pairRight: filled(n, unmatched),
		layer:     make([]float64, n),
	}
	for m.layerize() {
		for _, u := range m.left {
			if m.pairLeft[u] == unmatched {
				m.augment(u)
			}
		}
	}

	// Report pairs oriented Left→Right in ascending Left order.
	pairs := make([]Pair, 0, len(m.left))
	for _, u := range m.left {
		if v := m.pairLeft[u]; v != unmatched {
			pairs = append(pairs, Pair{Left: vertices[u], Right: vertices[v]})
		}
	}

	return pairs, nil
}

const unmatched = -1

// matcher carries the Hopcroft–Karp state across phases. pairLeft and
// pairRight are inverse views of the current matching; layer holds the
// BFS depth of each Left vertex within the current phase, +Inf meaning
// unreachable or exhausted.
type matcher struct {
	adj       [][]int
	left      []int
	pairLeft  []int
	pairRight []int
	layer     []float64
}

// layerize runs the phase BFS from every free Left vertex and reports
// whether at least one augmenting path exists.
func (m *matcher) layerize() bool {
	queue := make([]int, 0, len(m.left))
	for _, u := range m.left {
		if m.pairLeft[u] == unmatched {
			m.layer[u] = 0
			queue = append(queue, u)
		} else {
			m.layer[u] = math.Inf(1)
		}
	}

	found := false
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range m.adj[u] {
			w := m.pairRight[v]
			if w == unmatched {
				found = true
			} else if math.IsInf(m.layer[w], 1) {
				m.layer[w] = m.layer[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return found
}

// augment searches depth-first for an augmenting path from the free
// Left vertex u, restricted to the current phase's layers, and flips
// it when found.
func (m *matcher) augment(u int) bool {
	for _, v := range m.adj[u] {
		w := m.pairRight[v]
		if w == unmatched || (m.layer[w] == m.layer[u]+1 && m.augment(w)) {
			m.pairLeft[u] = v
			m.pairRight[v] = u

			return true
		}
	}
	// Dead end: exclude u from the rest of this phase.
	m.layer[u] = math.Inf(1)

	return false
}

func opposite(s Side) Side {
	if s == Left {
		return Right
	}

	return Left
}

func filled(n, value int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = value
	}

	return s
}
