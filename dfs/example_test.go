package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/dfs"
)

// ExampleVisitor_Search classifies the edges of a square with a tail.
//
//	0───1
//	│   │
//	3───2───4
func ExampleVisitor_Search() {
	g := core.NewUndirectedGraph([]core.Edge{
		{Source: 0, Target: 1}, {Source: 1, Target: 2},
		{Source: 2, Target: 3}, {Source: 3, Target: 0},
		{Source: 2, Target: 4},
	})
	source, _ := g.VertexByID(0)

	dv := dfs.NewVisitor()
	dv.RegisterTreeEdgeExaminer(func(current, neighbor *core.Vertex) {
		fmt.Printf("tree %v-%v\n", current, neighbor)
	})
	dv.RegisterBackEdgeExaminer(func(current, neighbor *core.Vertex) {
		fmt.Printf("back %v-%v\n", current, neighbor)
	})
	dv.Search(g, source)

	// Output:
	// tree 0-1
	// tree 1-2
	// tree 2-3
	// back 3-0
	// tree 2-4
}

// ExampleFindCycle reports the witness cycle of the reference graph.
func ExampleFindCycle() {
	g := core.NewUndirectedGraph([]core.Edge{
		{Source: 0, Target: 1}, {Source: 0, Target: 2}, {Source: 0, Target: 3},
		{Source: 1, Target: 4}, {Source: 1, Target: 5}, {Source: 4, Target: 8},
		{Source: 4, Target: 9}, {Source: 3, Target: 6}, {Source: 3, Target: 7},
		{Source: 6, Target: 10}, {Source: 6, Target: 11}, {Source: 5, Target: 9},
	})
	source, _ := g.VertexByID(0)

	cycle, ok := dfs.FindCycle(g, source)
	fmt.Println(ok, dfs.JoinPath(cycle, " → "))

	// Output:
	// true 1 → 4 → 9 → 5 → 1
}

// ExampleClassify uses the result-producing form instead of callbacks.
func ExampleClassify() {
	g := core.NewUndirectedGraph([]core.Edge{
		{Source: 1, Target: 2}, {Source: 2, Target: 3}, {Source: 3, Target: 1},
	})
	source, _ := g.VertexByID(1)

	res := dfs.Classify(g, source, dfs.WithIterative())
	fmt.Println("tree:", res.TreeEdges)
	fmt.Println("back:", res.BackEdges)
	fmt.Println("cycle:", res.Cycle)

	// Output:
	// tree: [(1,2) (2,3)]
	// back: [(3,1)]
	// cycle: [1 2 3 1]
}
