// SPDX-License-Identifier: MIT
//
// File: ancestry.go
// Role: Parent-chain ancestry query used by back-edge classification.

package core

import "fmt"

// IsAncestor reports whether ancestor appears in descendant's parent chain.
//
// Implementation:
//   - Stage 1: Start at descendant and test whether ancestor is its parent.
//   - Stage 2: Step to the parent and repeat until a root (no parent) is reached.
//
// Behavior highlights:
//   - The immediate parent counts as an ancestor.
//   - A vertex is never its own ancestor (the walk starts at the parent link).
//   - Vertices of different graphs, free-standing vertices and value copies of
//     interned vertices are never related.
//
// Panics:
//   - ErrNilVertex when either argument is nil.
//   - ErrParentCycle when the chain is longer than the graph has vertices, which
//     can only happen if parent links were set by hand into a loop.
//
// Complexity: O(depth of descendant).
func IsAncestor(ancestor, descendant *Vertex) bool {
	mustVertex("IsAncestor", ancestor)
	mustVertex("IsAncestor", descendant)

	if ancestor.owner != descendant.owner || !ancestor.interned() || !descendant.interned() {
		return false
	}

	g := descendant.owner
	limit := len(g.vertices)
	cur := descendant
	for steps := 0; cur != nil; steps++ {
		if steps > limit {
			panic(fmt.Errorf("IsAncestor(%d, %d): %w", ancestor.id, descendant.id, ErrParentCycle))
		}
		if ancestor.IsParentOf(cur) {
			return true
		}
		cur = cur.Parent()
	}

	return false
}
