package flow_test

import (
	"testing"

	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flowTolerance = 1e-9

// buildDiamond constructs the classic four-vertex network:
//
//	0→1 (3)  0→2 (2)  1→2 (1)  1→3 (2)  2→3 (3)
//
// Its maximum 0→3 flow is 5 and saturates both edges into the sink.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Load(true, 4, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	})
	require.NoError(t, err)

	return g
}

// TestEdmondsKarp_Diamond verifies the flow value and the conservation
// law at every internal vertex.
func TestEdmondsKarp_Diamond(t *testing.T) {
	g := buildDiamond(t)

	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.MaxFlow, flowTolerance)
	require.Len(t, res.Edges, 5)

	// Per-edge flows respect capacities.
	for _, fe := range res.Edges {
		assert.GreaterOrEqual(t, fe.Flow, -flowTolerance, "edge %d->%d", fe.From, fe.To)
		assert.LessOrEqual(t, fe.Flow, fe.Capacity+flowTolerance, "edge %d->%d", fe.From, fe.To)
	}

	// Conservation: net flow is zero everywhere except source and sink.
	net := map[int]float64{}
	for _, fe := range res.Edges {
		net[fe.From] -= fe.Flow
		net[fe.To] += fe.Flow
	}
	assert.InDelta(t, -5.0, net[0], flowTolerance)
	assert.InDelta(t, 0.0, net[1], flowTolerance)
	assert.InDelta(t, 0.0, net[2], flowTolerance)
	assert.InDelta(t, 5.0, net[3], flowTolerance)
}

// TestEdmondsKarp_NeedsResidualReversal uses a network whose optimum is
// only reachable by pushing flow back along an earlier augmentation.
func TestEdmondsKarp_NeedsResidualReversal(t *testing.T) {
	g, err := core.Load(true, 6, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 10},
		{From: 0, To: 2, Weight: 10},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 4},
		{From: 1, To: 4, Weight: 8},
		{From: 2, To: 4, Weight: 9},
		{From: 3, To: 5, Weight: 10},
		{From: 4, To: 3, Weight: 6},
		{From: 4, To: 5, Weight: 10},
	})
	require.NoError(t, err)

	res, err := flow.EdmondsKarp(g, 0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 19.0, res.MaxFlow, flowTolerance)
}

// TestEdmondsKarp_UnreachableSink verifies a cut-off sink yields zero
// flow rather than an error.
func TestEdmondsKarp_UnreachableSink(t *testing.T) {
	g, err := core.Load(true, 4, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 5},
		{From: 3, To: 2, Weight: 5}, // points away from the sink side
	})
	require.NoError(t, err)

	res, err := flow.EdmondsKarp(g, 0, 2)
	require.NoError(t, err)
	assert.Zero(t, res.MaxFlow)
}

// TestEdmondsKarp_SourceEqualsSink verifies the trivial network.
func TestEdmondsKarp_SourceEqualsSink(t *testing.T) {
	g := buildDiamond(t)

	res, err := flow.EdmondsKarp(g, 2, 2)
	require.NoError(t, err)
	assert.Zero(t, res.MaxFlow)
	require.Len(t, res.Edges, 5)
	for _, fe := range res.Edges {
		assert.Zero(t, fe.Flow)
	}
}

// TestEdmondsKarp_Validation sweeps the input rejections.
func TestEdmondsKarp_Validation(t *testing.T) {
	_, err := flow.EdmondsKarp(nil, 0, 1)
	assert.ErrorIs(t, err, flow.ErrNilGraph)

	undirected := core.NewGraph(false)
	require.NoError(t, undirected.AddVertex(0))
	_, err = flow.EdmondsKarp(undirected, 0, 0)
	assert.ErrorIs(t, err, flow.ErrNotDirected)

	g := buildDiamond(t)
	_, err = flow.EdmondsKarp(g, 42, 3)
	assert.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.EdmondsKarp(g, 0, 42)
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)

	bad, err := core.Load(true, 2, []core.EdgeDecl{{From: 0, To: 1, Weight: -3}})
	require.NoError(t, err)
	_, err = flow.EdmondsKarp(bad, 0, 1)
	assert.ErrorIs(t, err, flow.ErrNegativeCapacity)
}

// TestEdmondsKarp_Deterministic verifies repeated runs yield identical
// per-edge assignments.
func TestEdmondsKarp_Deterministic(t *testing.T) {
	g := buildDiamond(t)

	first, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := flow.EdmondsKarp(g, 0, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
