// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Vertex catalog, membership and adjacency queries, traversal-state reset.
//
// Determinism:
//   - Vertices() and AdjacentVerticesOf() return vertices sorted by ID ascending.
//
// Concurrency:
//   - Read-only queries are safe to share; ResetVertices and any search mutate
//     per-vertex state and must not run concurrently on one graph.

package core

import (
	"fmt"
	"sort"
)

// Vertices returns every interned vertex, sorted by ID.
// The slice is fresh; the *Vertex handles point into the graph's arena.
// Complexity: O(V log V).
func (g *UndirectedGraph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	for slot := range g.vertices {
		out[slot] = &g.vertices[slot]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// VertexCount returns the number of interned vertices.
func (g *UndirectedGraph) VertexCount() int { return len(g.vertices) }

// VertexByID returns the interned vertex for id.
// The boolean is false when no edge mentioned id; lookups never create vertices.
// Complexity: O(1).
func (g *UndirectedGraph) VertexByID(id VertexID) (*Vertex, bool) {
	slot, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return &g.vertices[slot], true
}

// HasVertex reports whether v is interned by this graph.
//
// Membership is by identity: a free-standing vertex or a vertex of another graph
// is not a member even when it carries an ID this graph knows. nil is never a member.
func (g *UndirectedGraph) HasVertex(v *Vertex) bool {
	if v == nil || v.owner != g {
		return false
	}

	return v.slot >= 0 && v.slot < len(g.vertices) && &g.vertices[v.slot] == v
}

// AdjacentVerticesOf returns the neighbors of v sorted by ID.
//
// Panics with ErrVertexNotMember when v is not interned by g; asking a graph
// for the neighbors of a vertex it does not own is a caller bug.
// Complexity: O(deg(v)).
func (g *UndirectedGraph) AdjacentVerticesOf(v *Vertex) []*Vertex {
	g.mustMember("AdjacentVerticesOf", v)

	nbrs := g.adjacency[v.slot]
	out := make([]*Vertex, len(nbrs))
	for i, slot := range nbrs {
		out[i] = &g.vertices[slot]
	}

	return out
}

// Degree returns the number of distinct neighbors of v.
// Panics with ErrVertexNotMember when v is not interned by g.
func (g *UndirectedGraph) Degree(v *Vertex) int {
	g.mustMember("Degree", v)

	return len(g.adjacency[v.slot])
}

// ResetVertices restores every vertex to discovered=false with no parent.
// Call it before each independent traversal; searches in this module do so themselves.
// Complexity: O(V).
func (g *UndirectedGraph) ResetVertices() {
	for slot := range g.vertices {
		g.vertices[slot].Reset()
	}
}

// mustMember panics unless v is interned by g.
func (g *UndirectedGraph) mustMember(op string, v *Vertex) {
	mustVertex(op, v)
	if !g.HasVertex(v) {
		panic(fmt.Errorf("%s(%d): %w", op, v.id, ErrVertexNotMember))
	}
}
