package flow_test

import (
	"fmt"

	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/flow"
)

// ExampleEdmondsKarp demonstrates a maximum-flow query on a small
// directed network.
func ExampleEdmondsKarp() {
	g, _ := core.Load(true, 4, []core.EdgeDecl{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	})

	res, _ := flow.EdmondsKarp(g, 0, 3)
	fmt.Println(res.MaxFlow)
	// Output: 5
}
