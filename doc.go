// Package lvlcycle answers one question about an undirected graph given as an
// edge list: does it contain a cycle?
//
// 🚀 What is lvlcycle?
//
//	A small graph toolkit built around a depth-first visitor that classifies
//	every edge it meets as a tree edge or a back edge:
//		• Core primitives: arena-backed undirected graph, vertices with
//		  discovered flag and parent link, ancestry queries
//		• Traversals: DFS (recursive and explicit-stack), BFS
//		• Cycle detection: back edges, breadth-first check, union-find forest
//		• Fixtures: paths, cycles, wheels, grids, complete graphs, trees
//		• Interop: YAML edge-list documents, dominikbraun/graph conversion
//		• Batch checks: concurrent runner with caching and Prometheus metrics
//
// ✨ Why a visitor?
//
//   - Cycle detection is a back-edge examiner that flips a flag
//   - The same walk serves classification, witness cycles and benchmarks
//   - Deterministic: neighbors are visited in ascending ID order
//
// Packages:
//
//	core/         UndirectedGraph, Vertex, Edge, IsAncestor
//	dfs/          Visitor, Classify, DetectCycle, FindCycle
//	bfs/          BFS, HasCycle
//	kruskal/      SpanningForest, redundant edges, cyclomatic number
//	builder/      deterministic edge-list fixtures
//	edgelist/     YAML documents of named edge lists
//	converters/   to and from github.com/dominikbraun/graph
//	cycle/        Check, strategies, fingerprints, concurrent Runner
//	cmd/cyclecheck  command-line front end
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	DFS from 0 walks 0→1→2→3 as tree edges; (3,0) is a back edge, so the
//	square contains the cycle 0 → 1 → 2 → 3 → 0.
//
//	go install github.com/katalvlaran/lvlcycle/cmd/cyclecheck@latest
package lvlcycle
