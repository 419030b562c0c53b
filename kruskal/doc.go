// Package kruskal builds a spanning forest of a core.UndirectedGraph with
// Kruskal's union-find loop and reports the edges left out of it.
//
// With no weights to sort by, edges are taken in canonical order
// (core.UndirectedGraph.Edges). An edge whose endpoints are already in one set
// is redundant: it closes a cycle with the forest built so far. So
//
//	|Redundant| == E - V + C        (the cyclomatic number)
//
// and a graph is acyclic exactly when Redundant is empty.
//
// The disjoint-set uses iterative find with path halving and union by rank.
//
// Complexity: Time O(E log E + α(V)·E), Memory O(V + E).
//
// Unlike the traversals in dfs and bfs, SpanningForest never touches per-vertex
// traversal state, so one graph may be processed from several goroutines.
package kruskal
