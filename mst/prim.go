package mst

import (
	"container/heap"

	"github.com/grafo-dev/grafo/core"
)

// Prim computes a minimum spanning tree by growing outward from root
// with a min-heap of frontier edges. Edges are returned in acquisition
// order, so the slice doubles as a growth trace of the tree.
//
// Error conditions:
//   - ErrNilGraph         : g is nil.
//   - ErrNotUndirected    : g is directed.
//   - core.ErrVertexNotFound : root is absent from g.
//   - ErrDisconnected     : g is empty, or some vertex is unreachable
//     from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Handle the trivial cases: empty graph, single vertex.
//  3. Mark root visited and push its incident edges.
//  4. Repeatedly pop the cheapest frontier edge; if its far endpoint is
//     new, adopt the edge and push that endpoint's incident edges.
//  5. Fewer than |V|-1 adopted edges means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, float64, error) {
	// 1. Validate inputs before touching any state.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrNotUndirected
	}
	if !g.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 2. Trivial sizes. An empty graph cannot reach here (root exists),
	//    and a single vertex spans itself with no edges.
	n := g.VertexCount()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Seed the frontier with the root's incident edges.
	visited := make(map[int]bool, n)
	visited[root] = true
	pq := make(edgePQ, 0, n)
	pushFrontier(&pq, g, root, visited)

	// 4. Grow the tree one cheapest edge at a time.
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(&pq).(core.Edge)
		if visited[e.To] {
			// Stale entry; both endpoints already in the tree.
			continue
		}
		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		pushFrontier(&pq, g, e.To, visited)
	}

	// 5. A short tree means some vertex was never reached.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// pushFrontier pushes every edge from u to an unvisited neighbor.
// Neighbors returns edges in ascending order of the far endpoint, which
// together with edgePQ's tie-breaking keeps runs deterministic.
func pushFrontier(pq *edgePQ, g *core.Graph, u int, visited map[int]bool) {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		// u was just marked visited, so it exists; Neighbors cannot fail.
		return
	}
	for _, e := range neighbors {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}
}

// edgePQ is a min-heap of candidate edges ordered by weight, then by the
// far endpoint's ID, then by the near endpoint's ID. The secondary keys
// make equal-weight pops reproducible.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].To != pq[j].To {
		return pq[i].To < pq[j].To
	}

	return pq[i].From < pq[j].From
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
