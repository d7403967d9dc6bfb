package core_test

import (
	"fmt"

	"github.com/katalvlaran/labelgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph with three isolated vertices:
	g, _ := core.NewGraph(3)

	// 2) Add edges by index:
	g.AddEdge(0, 1)
	g.AddEdge(2, 1)

	// 3) Grow by one vertex and connect it:
	v, _ := g.AddVertex()
	g.AddEdge(v, 0)

	nb, _ := g.OutNeighbors(0)
	fmt.Println("Edges:", g.Edges())
	fmt.Println("Neighbors of 0:", nb)

	// Output:
	// Edges: [0->1 0->3 1->2]
	// Neighbors of 0: [1 3]
}

// ExampleDiGraph shows asymmetric neighbourhoods.
func ExampleDiGraph() {
	g, _ := core.NewDiGraph(2)
	g.AddEdge(0, 1)

	out, _ := g.OutNeighbors(0)
	in, _ := g.InNeighbors(0)
	fmt.Println(out, in, g.HasEdge(1, 0))

	// Output:
	// [1] [] false
}
