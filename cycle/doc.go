// Package cycle answers "does this undirected edge list contain a cycle?".
//
// Check builds a core.UndirectedGraph from the edges, picks the traversal
// source (vertex 0 by default, as in the reference usage) and runs one of the
// strategies:
//
//   - dfs            recursive depth-first search; a back edge means a cycle
//   - dfs-iterative  the same walk on an explicit stack, for very deep graphs
//   - bfs            breadth-first walk; a discovered non-parent neighbor means a cycle
//   - union-find     spanning forest via kruskal; an edge inside one set means a cycle
//
// The depth-first strategies also report the back edges and a witness cycle;
// union-find reports the redundant edges of the source's component.
//
// Runner checks many edge lists concurrently on a bounded worker pool. Each job
// builds its own graph, so no traversal state is shared between goroutines;
// identical topologies (equal Fingerprint) are checked once and served from
// a cache afterwards. Runner logs with log/slog and can publish Prometheus
// metrics.
package cycle
