// Package converters provides two-way adapters between core.UndirectedGraph and
// github.com/dominikbraun/graph.
//
//   - ToDominik exports the topology (vertices, including isolated ones, and
//     distinct non-loop edges) into an undirected dominikbraun graph keyed by
//     core.VertexID.
//   - FromDominik imports an undirected dominikbraun graph. Isolated vertices
//     and self-loops come back as (v,v) edges so core registers the vertex.
//   - HasCycle answers the whole-graph cycle question with the library's own
//     CreatesCycle, independently of the dfs package.
//
// Traversal state (discovered flags, parents) is never exported.
package converters
