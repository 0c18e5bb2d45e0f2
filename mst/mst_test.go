package mst_test

import (
	"testing"

	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weightTolerance = 1e-9

// buildReference constructs the fixed undirected graph used throughout:
//
//	0-1 (4)  0-2 (1)  1-2 (2.5)  1-3 (5.9)  2-3 (4.1)  2-4 (10)  3-4 (2)
//
// Its unique minimum spanning tree weighs 9.6.
func buildReference(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Load(false, 5, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 2, Weight: 2.5},
		{From: 1, To: 3, Weight: 5.9},
		{From: 2, To: 3, Weight: 4.1},
		{From: 2, To: 4, Weight: 10},
		{From: 3, To: 4, Weight: 2},
	})
	require.NoError(t, err)

	return g
}

// TestPrim_Reference verifies both the total weight and the acquisition
// order on the reference graph, growing from vertex 0.
func TestPrim_Reference(t *testing.T) {
	g := buildReference(t)

	tree, total, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 9.6, total, weightTolerance)
	require.Len(t, tree, 4)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 2.5},
		{From: 2, To: 3, Weight: 4.1},
		{From: 3, To: 4, Weight: 2},
	}, tree)
}

// TestKruskal_Reference verifies the total weight and the ascending
// adoption order of Kruskal on the same graph.
func TestKruskal_Reference(t *testing.T) {
	g := buildReference(t)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.InDelta(t, 9.6, total, weightTolerance)
	require.Len(t, tree, 4)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 3, To: 4, Weight: 2},
		{From: 1, To: 2, Weight: 2.5},
		{From: 2, To: 3, Weight: 4.1},
	}, tree)
}

// TestPrim_RootIndependentWeight verifies every root yields the same
// total weight even when the edge lists differ.
func TestPrim_RootIndependentWeight(t *testing.T) {
	g := buildReference(t)

	for _, root := range g.Vertices() {
		_, total, err := mst.Prim(g, root)
		require.NoError(t, err)
		assert.InDelta(t, 9.6, total, weightTolerance, "root %d", root)
	}
}

// TestMST_AlgorithmsAgree verifies Prim and Kruskal report the same
// total weight on a graph with equal-weight edges.
func TestMST_AlgorithmsAgree(t *testing.T) {
	g, err := core.Load(false, 4, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 0, Weight: 1},
		{From: 0, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	_, primTotal, err := mst.Prim(g, 0)
	require.NoError(t, err)
	_, kruskalTotal, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.InDelta(t, primTotal, kruskalTotal, weightTolerance)
	assert.InDelta(t, 3.0, primTotal, weightTolerance)
}

// TestMST_Disconnected verifies both algorithms reject a two-component
// graph and the empty graph.
func TestMST_Disconnected(t *testing.T) {
	g, err := core.Load(false, 4, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	_, _, err = mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	empty := core.NewGraph(false)
	_, _, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

// TestMST_Validation sweeps nil, directed, and missing-root rejections.
func TestMST_Validation(t *testing.T) {
	_, _, err := mst.Prim(nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, _, err = mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	directed := core.NewGraph(true)
	require.NoError(t, directed.AddVertex(0))
	_, _, err = mst.Prim(directed, 0)
	assert.ErrorIs(t, err, mst.ErrNotUndirected)
	_, _, err = mst.Kruskal(directed)
	assert.ErrorIs(t, err, mst.ErrNotUndirected)

	g := buildReference(t)
	_, _, err = mst.Prim(g, 42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestMST_SingleVertex verifies the trivial spanning tree.
func TestMST_SingleVertex(t *testing.T) {
	g := core.NewGraph(false)
	require.NoError(t, g.AddVertex(0))

	tree, total, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, total, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

// TestCompute_Dispatch verifies option-driven algorithm selection.
func TestCompute_Dispatch(t *testing.T) {
	g := buildReference(t)

	_, total, err := mst.Compute(g)
	require.NoError(t, err)
	assert.InDelta(t, 9.6, total, weightTolerance)

	_, total, err = mst.Compute(g, mst.WithMethod(mst.MethodKruskal))
	require.NoError(t, err)
	assert.InDelta(t, 9.6, total, weightTolerance)

	_, total, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot(4))
	require.NoError(t, err)
	assert.InDelta(t, 9.6, total, weightTolerance)

	_, _, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.Error(t, err)
}
