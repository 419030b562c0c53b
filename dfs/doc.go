// Package dfs implements depth-first traversal with edge classification over
// a core.UndirectedGraph, and cycle detection built on it.
//
// What:
//
//   - Visitor: the depth-first visitor. Search(g, source) resets the graph's
//     traversal state and descends from source. For each neighbor of the current
//     vertex:
//   - undiscovered → set its parent, call the tree-edge examiner, descend;
//   - always → run the back-edge test and call the back-edge examiner on a hit.
//   - Back-edge test: the neighbor is not the current vertex's parent and is an
//     ancestor of it (core.IsAncestor). In an undirected DFS there are no cross
//     edges, so every back edge closes a cycle.
//   - SearchIterative / WithIterative: the same walk on an explicit stack, with
//     identical discovery order, parent links and examiner call order.
//   - SearchAll: forest traversal over every component.
//   - Classify: result-producing traversal returning tree and back edges.
//   - DetectCycle, FindCycle, CyclePath: cycle existence and a witness cycle.
//
// Why:
//   - Examiners keep the traversal reusable: cycle detection is just a
//     back-edge examiner that flips a flag.
//   - The explicit stack bounds goroutine stack growth on very deep graphs.
//
// Complexity:
//
//   - Search:       Time O(V + E·h), Memory O(V)   (h = depth of the DFS tree)
//   - Classify:     Time O(V + E·h), Memory O(V + E)
//   - CyclePath:    Time O(L), L = cycle length
//
// Preconditions (panic, wrapped sentinel):
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrSourceNotMember  source is nil or not interned by the graph
//
// Concurrency: a search mutates per-vertex state of the graph. Do not search one
// graph from several goroutines; use core.UndirectedGraph.Clone per goroutine.
package dfs
