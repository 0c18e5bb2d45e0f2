package core_test

import (
	"testing"

	"github.com/grafo-dev/grafo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath constructs the undirected chain 0—1—2 with unit weights.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(false)
	for id := 0; id < 3; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	return g
}

// TestAddVertex_Validation covers the duplicate and negative-ID rejections.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph(false)

	require.NoError(t, g.AddVertex(0))
	assert.ErrorIs(t, g.AddVertex(0), core.ErrDuplicateVertex)
	assert.ErrorIs(t, g.AddVertex(-1), core.ErrVertexOutOfRange)
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_UnknownVertex verifies that a failed AddEdge inserts nothing:
// no partial mutation may ever be observed.
func TestAddEdge_UnknownVertex(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddVertex(0))

	assert.ErrorIs(t, g.AddEdge(0, 7, 2.5), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(7, 0, 2.5), core.ErrVertexNotFound)
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 7))
}

// TestAddEdge_SelfLoopRejected pins the loop policy: self-loops are refused
// at insertion on both graph modes.
func TestAddEdge_SelfLoopRejected(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.NewGraph(directed)
		require.NoError(t, g.AddVertex(4))

		assert.ErrorIs(t, g.AddEdge(4, 4, 1), core.ErrSelfLoop)
		assert.Zero(t, g.EdgeCount())
	}
}

// TestAddEdge_LastDefinitionWins verifies that re-inserting a pair
// overwrites the weight in place: no parallel edge, listing position kept.
func TestAddEdge_LastDefinitionWins(t *testing.T) {
	g := core.NewGraph(false)
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 7))
	// Overwrite via the mirrored orientation of the unordered pair.
	require.NoError(t, g.AddEdge(1, 0, 9.5))

	assert.Equal(t, 2, g.EdgeCount())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 9.5}, edges[0])
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 7}, edges[1])
}

// TestDirected_PairsAreDistinct verifies that (u,v) and (v,u) coexist in a
// directed graph with independent weights.
func TestDirected_PairsAreDistinct(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))

	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 0, 2))

	assert.Equal(t, 2, g.EdgeCount())
	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
	w, ok = g.Weight(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
}

// TestUndirected_SymmetricQueries verifies that one stored undirected edge
// answers adjacency queries in both directions.
func TestUndirected_SymmetricQueries(t *testing.T) {
	g := buildPath(t)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestRemoveVertex_CascadesEdges verifies that removing a vertex removes
// every incident edge and leaves no dangling endpoints behind.
func TestRemoveVertex_CascadesEdges(t *testing.T) {
	g := buildPath(t)

	require.NoError(t, g.RemoveVertex(1))

	assert.False(t, g.HasVertex(1))
	assert.Zero(t, g.EdgeCount())
	// Invariant: every listed edge references present vertices.
	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.From))
		assert.True(t, g.HasVertex(e.To))
	}

	assert.ErrorIs(t, g.RemoveVertex(1), core.ErrVertexNotFound)
}

// TestRemoveEdge_SecondRemovalFails verifies removal of exactly one logical
// edge and the UnknownEdge failure on the repeated call.
func TestRemoveEdge_SecondRemovalFails(t *testing.T) {
	g := buildPath(t)

	require.NoError(t, g.RemoveEdge(1, 0)) // mirror orientation on purpose
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 1))

	err := g.RemoveEdge(0, 1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestLoad_BuildsDeclaredRange verifies the bulk constructor: dense vertex
// range, duplicate resolution, and out-of-range rejection.
func TestLoad_BuildsDeclaredRange(t *testing.T) {
	decls := []core.EdgeDecl{
		{From: 0, To: 1, Weight: 4},
		{From: 2, To: 1, Weight: 1},
		{From: 0, To: 1, Weight: 2.5}, // last definition wins
	}

	g, err := core.Load(false, 4, decls)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2.5, w)

	// Endpoint beyond the declared bound is rejected outright.
	_, err = core.Load(false, 2, []core.EdgeDecl{{From: 0, To: 5, Weight: 1}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	// As is a negative declared count.
	_, err = core.Load(false, -1, nil)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestLoad_Deterministic verifies structural equality of two loads of the
// same declaration sequence.
func TestLoad_Deterministic(t *testing.T) {
	decls := []core.EdgeDecl{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 2},
	}

	a, err := core.Load(true, 3, decls)
	require.NoError(t, err)
	b, err := core.Load(true, 3, decls)
	require.NoError(t, err)

	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestNeighbors_AscendingOrder pins the deterministic relaxation order.
func TestNeighbors_AscendingOrder(t *testing.T) {
	g := core.NewGraph(true)
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	got := make([]int, 0, len(nbrs))
	for _, e := range nbrs {
		got = append(got, e.To)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestDirected_NeighborsAreOutgoingOnly verifies that a directed graph
// never reports an incoming arc as a neighbor.
func TestDirected_NeighborsAreOutgoingOnly(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}
