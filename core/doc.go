// Package core provides the undirected graph, its vertices and the ancestry
// query that depth-first edge classification is built on.
//
// The graph G = (V,E) is built once from an edge list and never mutated:
//
//   - Vertices are interned: one canonical *Vertex per ID for the graph's lifetime.
//   - Self-loops (v,v) register v but add no adjacency.
//   - Duplicate edges, in either orientation, are idempotent (adjacency sets).
//   - Vertex records live in a dense arena; adjacency and parent links are
//     arena indices, so the ownership structure never has cycles even when the
//     logical graph does.
//
// Traversal state:
//
//	Each Vertex carries a discovered flag and a parent link. Searches mutate
//	them and reset them first (ResetVertices), so state never leaks between runs.
//	A graph therefore must not be searched from two goroutines at once; Clone
//	gives each goroutine its own copy of the state.
//
// Identity:
//
//	Vertices of one graph compare by ID. A vertex of another graph, or one made
//	with NewVertex, is never a member and never an ancestor, whatever its ID.
//
// Core methods:
//
//	NewUndirectedGraph(edges []Edge) *UndirectedGraph   // O(V log V + E log d)
//	Vertices() []*Vertex                                // sorted by ID
//	VertexByID(id VertexID) (*Vertex, bool)             // O(1), never creates
//	HasVertex(v *Vertex) bool                           // identity membership
//	AdjacentVerticesOf(v *Vertex) []*Vertex             // panics for non-members
//	ResetVertices()                                     // O(V)
//	Edges() []Edge, EdgeCount(), VertexCount(), Degree(v), Stats(), Clone()
//
//	IsAncestor(ancestor, descendant *Vertex) bool       // parent-chain walk
//
// Precondition violations (nil vertices, non-members, self-parenting) are
// programming errors and panic with a wrapped sentinel error.
package core
