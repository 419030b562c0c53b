package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlcycle/builder"
	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/dfs"
)

// benchGraph builds the fixture once and returns it with vertex 0 as source.
func benchGraph(b *testing.B, ctor builder.Constructor) (*core.UndirectedGraph, *core.Vertex) {
	b.Helper()
	edges, err := builder.Build(nil, ctor)
	if err != nil {
		b.Fatalf("build fixture: %v", err)
	}
	g := core.NewUndirectedGraph(edges)
	src, _ := g.VertexByID(0)

	return g, src
}

// BenchmarkSearch_Chain10000 compares the recursive and explicit-stack walks on
// a 10,000-vertex path, the deepest possible DFS tree for its size.
func BenchmarkSearch_Chain10000(b *testing.B) {
	g, src := benchGraph(b, builder.Path(10000))

	b.Run("recursive", func(b *testing.B) {
		dv := dfs.NewVisitor()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dv.Search(g, src)
		}
	})
	b.Run("iterative", func(b *testing.B) {
		dv := dfs.NewVisitor(dfs.WithIterative())
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dv.Search(g, src)
		}
	})
}

// BenchmarkDetectCycle_Grid100 measures cycle detection on a 100×100 grid.
// The first back edge appears early, but Search always completes the walk.
func BenchmarkDetectCycle_Grid100(b *testing.B) {
	g, src := benchGraph(b, builder.Grid(100, 100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !dfs.DetectCycle(g, src) {
			b.Fatal("grid must contain a cycle")
		}
	}
}

// BenchmarkClassify_BinaryTree16 classifies a 65,535-vertex tree.
func BenchmarkClassify_BinaryTree16(b *testing.B) {
	g, src := benchGraph(b, builder.BinaryTree(16))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Classify(g, src)
	}
}
