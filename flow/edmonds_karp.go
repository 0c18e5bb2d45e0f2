package flow

import (
	"math"

	"github.com/grafo-dev/grafo/core"
)

// residualEdge is one arc of the residual network. rev indexes the
// paired reverse arc inside adj[to], so augmenting an arc can update
// its twin in O(1).
type residualEdge struct {
	to       int
	rev      int
	capacity float64
	flow     float64
}

func (e *residualEdge) residual() float64 { return e.capacity - e.flow }

// arcRef addresses one arc in the residual network: adj[at][pos].
type arcRef struct{ at, pos int }

// EdmondsKarp computes the maximum flow from source to sink.
//
// Error conditions:
//   - ErrNilGraph          : g is nil.
//   - ErrNotDirected       : g is undirected.
//   - ErrSourceNotFound    : source is absent from g.
//   - ErrSinkNotFound      : sink is absent from g.
//   - ErrNegativeCapacity  : some edge has a negative weight.
//
// When source == sink the flow value is zero and every edge carries
// zero flow.
//
// Steps:
//  1. Validate the graph, the endpoints, and all capacities.
//  2. Build the residual network: one forward arc per edge plus a
//     zero-capacity reverse arc, each holding the index of its twin.
//  3. Repeat BFS from source; a path reaching sink through arcs with
//     positive residual capacity is an augmenting path.
//  4. Push the path's bottleneck along it, adjusting twin arcs, until
//     BFS no longer reaches sink.
//  5. Report the per-edge flows in the graph's edge order.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(g *core.Graph, source, sink int) (Result, error) {
	// 1. Validate inputs before building any state.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Directed() {
		return Result{}, ErrNotDirected
	}
	if !g.HasVertex(source) {
		return Result{}, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return Result{}, ErrSinkNotFound
	}
	edges := g.Edges()
	for _, e := range edges {
		if e.Weight < 0 {
			return Result{}, ErrNegativeCapacity
		}
	}

	// Trivial network: nothing can flow from a vertex to itself.
	if source == sink {
		return Result{MaxFlow: 0, Edges: zeroFlows(edges)}, nil
	}

	// 2. Index vertices densely and build the residual network.
	//    forward[i] locates the forward arc of edges[i] so per-edge
	//    flows can be read back afterwards.
	index := make(map[int]int, g.VertexCount())
	for i, v := range g.Vertices() {
		index[v] = i
	}
	adj := make([][]residualEdge, len(index))
	forward := make([]arcRef, len(edges))
	for i, e := range edges {
		u, v := index[e.From], index[e.To]
		forward[i] = arcRef{at: u, pos: len(adj[u])}
		adj[u] = append(adj[u], residualEdge{to: v, rev: len(adj[v]), capacity: e.Weight})
		adj[v] = append(adj[v], residualEdge{to: u, rev: len(adj[u]) - 1, capacity: 0})
	}

	// 3-4. Augment along shortest residual paths until sink is cut off.
	s, t := index[source], index[sink]
	var maxFlow float64
	parent := make([]arcRef, len(adj))
	for augment(adj, s, t, parent) {
		// Walk sink→source once for the bottleneck, once to push it.
		bottleneck := math.Inf(1)
		for v := t; v != s; {
			arc := &adj[parent[v].at][parent[v].pos]
			bottleneck = math.Min(bottleneck, arc.residual())
			v = parent[v].at
		}
		for v := t; v != s; {
			arc := &adj[parent[v].at][parent[v].pos]
			arc.flow += bottleneck
			adj[arc.to][arc.rev].flow -= bottleneck
			v = parent[v].at
		}
		maxFlow += bottleneck
	}

	// 5. Read back the flow carried by each original edge.
	result := Result{MaxFlow: maxFlow, Edges: make([]FlowEdge, len(edges))}
	for i, e := range edges {
		arc := adj[forward[i].at][forward[i].pos]
		result.Edges[i] = FlowEdge{From: e.From, To: e.To, Capacity: e.Weight, Flow: arc.flow}
	}

	return result, nil
}

// augment runs one BFS over arcs with positive residual capacity and
// records the discovered arc for each visited vertex in parent. It
// reports whether t was reached.
func augment(adj [][]residualEdge, s, t int, parent []arcRef) bool {
	visited := make([]bool, len(adj))
	visited[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for pos := range adj[u] {
			arc := &adj[u][pos]
			if visited[arc.to] || arc.residual() <= 0 {
				continue
			}
			visited[arc.to] = true
			parent[arc.to] = arcRef{at: u, pos: pos}
			if arc.to == t {
				return true
			}
			queue = append(queue, arc.to)
		}
	}

	return false
}

// zeroFlows maps the original edges to a zero assignment.
func zeroFlows(edges []core.Edge) []FlowEdge {
	out := make([]FlowEdge, len(edges))
	for i, e := range edges {
		out[i] = FlowEdge{From: e.From, To: e.To, Capacity: e.Weight}
	}

	return out
}
