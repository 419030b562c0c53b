// Package dfs implements cycle detection for undirected core.UndirectedGraphs
// on top of back-edge classification.
//
// A back edge (current, a) found by the Visitor means a is a strict ancestor of
// current other than its parent; the tree path a → … → current plus the edge
// itself is a simple cycle of length ≥ 3.
//
// Complexity:
//
//   - Time:   O(V + E·h) for the search plus O(L) per reconstructed cycle.
//   - Memory: O(V + L)
package dfs

import (
	"github.com/katalvlaran/lvlcycle/core"
)

// DetectCycle reports whether the component of g containing source has a cycle.
// Panics on the same preconditions as Visitor.Search.
func DetectCycle(g *core.UndirectedGraph, source *core.Vertex) bool {
	found := false
	dv := NewVisitor()
	dv.RegisterBackEdgeExaminer(func(_, _ *core.Vertex) { found = true })
	dv.Search(g, source)

	return found
}

// FindCycle returns the witness cycle of the first back edge met while searching
// from source, as [a, ..., current, a]. The boolean is false for an acyclic component.
func FindCycle(g *core.UndirectedGraph, source *core.Vertex) ([]core.VertexID, bool) {
	var witness []core.VertexID
	dv := NewVisitor()
	dv.RegisterBackEdgeExaminer(func(current, neighbor *core.Vertex) {
		if witness == nil {
			witness = CyclePath(current, neighbor)
		}
	})
	dv.Search(g, source)

	return witness, witness != nil
}

// CyclePath reconstructs the cycle closed by the back edge (current, ancestor)
// from the current parent links: [ancestor, ..., current, ancestor].
//
// It must run while the parent links of the search are still in place: inside a
// back-edge examiner, or after the search and before the next reset.
// Returns nil when ancestor is not an ancestor of current.
func CyclePath(current, ancestor *core.Vertex) []core.VertexID {
	if !core.IsAncestor(ancestor, current) {
		return nil
	}

	// 1) Climb from current to ancestor (IsAncestor guarantees termination)
	path := []core.VertexID{current.ID()}
	for v := current.Parent(); !v.Is(ancestor); v = v.Parent() {
		path = append(path, v.ID())
	}
	path = append(path, ancestor.ID())

	// 2) Orient top-down and close the loop
	path = Reverse(path)

	return append(path, ancestor.ID())
}
