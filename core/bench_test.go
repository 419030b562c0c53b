package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlcycle/core"
)

// BenchmarkNewUndirectedGraph measures construction of a 10,000-vertex chain,
// including the duplicate and reversed edges construction must absorb.
func BenchmarkNewUndirectedGraph(b *testing.B) {
	edges := chainEdges(10000)
	for _, e := range edges[:1000] {
		edges = append(edges, core.Edge{Source: e.Target, Target: e.Source})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.NewUndirectedGraph(edges)
	}
}

// BenchmarkAdjacentVerticesOf measures neighbor lookup on a star center.
func BenchmarkAdjacentVerticesOf(b *testing.B) {
	edges := make([]core.Edge, 0, 1000)
	for i := 1; i <= 1000; i++ {
		edges = append(edges, core.Edge{Source: 0, Target: core.VertexID(i)})
	}
	g := core.NewUndirectedGraph(edges)
	center, _ := g.VertexByID(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacentVerticesOf(center)
	}
}

// BenchmarkClone measures the per-goroutine copy used for concurrent checks.
func BenchmarkClone(b *testing.B) {
	g := core.NewUndirectedGraph(chainEdges(10000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkIsAncestor_DeepChain walks a 10,000-long parent chain (worst case).
func BenchmarkIsAncestor_DeepChain(b *testing.B) {
	g := core.NewUndirectedGraph(chainEdges(10000))
	vs := g.Vertices()
	for i := 1; i < len(vs); i++ {
		vs[i].SetParent(vs[i-1])
	}
	root, leaf := vs[0], vs[len(vs)-1]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.IsAncestor(root, leaf)
	}
}
