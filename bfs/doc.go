// Package bfs implements breadth-first traversal of a core.UndirectedGraph and
// a breadth-first cycle check.
//
// HasCycle reaches the same verdict as dfs.DetectCycle without classifying
// edges: while expanding u, every neighbor other than u's parent that is already
// discovered closes a cycle.
//
// Both walks use the graph's own vertex state (discovered flag, parent link)
// and reset it first, like the depth-first visitor.
//
// Complexity: Time O(V + E), Memory O(V).
package bfs
