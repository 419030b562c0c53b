// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex identity and traversal-state accessors.
//
// Identity:
//   - Two graph vertices are the same iff they share an owner graph and an ID.
//   - A free-standing vertex (NewVertex) is only ever identical to itself.
//
// Fail-fast:
//   - SetParent and IsParentOf panic on nil, self or cross-graph arguments.

package core

import "fmt"

// ID returns the vertex identity.
func (v *Vertex) ID() VertexID { return v.id }

// IsDiscovered reports whether a traversal has reached this vertex since the last reset.
func (v *Vertex) IsDiscovered() bool { return v.discovered }

// MarkDiscovered labels the vertex as reached by the current traversal.
func (v *Vertex) MarkDiscovered() { v.discovered = true }

// HasParent reports whether the vertex currently has a parent link.
func (v *Vertex) HasParent() bool { return v.parent != noParent }

// Parent returns the parent vertex, or nil for a root or an unvisited vertex.
func (v *Vertex) Parent() *Vertex {
	if v.parent == noParent {
		return nil
	}

	return &v.owner.vertices[v.parent]
}

// SetParent links v to parent p.
//
// Panics:
//   - ErrNilVertex      if v or p is nil.
//   - ErrSelfParent     if p is v.
//   - ErrForeignVertex  if p and v are not interned by the same graph.
func (v *Vertex) SetParent(p *Vertex) {
	mustVertex("SetParent", v)
	mustVertex("SetParent", p)
	if v.Is(p) {
		panic(fmt.Errorf("SetParent(%d): %w", v.id, ErrSelfParent))
	}
	if v.owner == nil || p.owner != v.owner {
		panic(fmt.Errorf("SetParent(%d <- %d): %w", v.id, p.id, ErrForeignVertex))
	}

	v.parent = p.slot
}

// IsParentOf reports whether other's parent is v.
// Both must be interned by the same graph; a value copy of a vertex is never a parent.
// Panics with ErrNilVertex when v or other is nil.
func (v *Vertex) IsParentOf(other *Vertex) bool {
	mustVertex("IsParentOf", v)
	mustVertex("IsParentOf", other)
	if other.parent == noParent || other.owner != v.owner || !v.interned() || !other.interned() {
		return false
	}

	return other.parent == v.slot
}

// interned reports whether v is the arena instance of its owner graph.
func (v *Vertex) interned() bool {
	return v.owner != nil && v.owner.HasVertex(v)
}

// Reset clears the traversal state: undiscovered and no parent.
func (v *Vertex) Reset() {
	v.discovered = false
	v.parent = noParent
}

// Is reports whether v and other denote the same vertex.
//
// Graph vertices compare by (owner graph, ID). Free-standing vertices compare by
// pointer, so an independently created vertex never aliases a graph vertex even
// when the IDs are equal.
func (v *Vertex) Is(other *Vertex) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.owner == nil || other.owner == nil {
		return v == other
	}

	return v.owner == other.owner && v.id == other.id
}

// String renders the vertex ID.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d", v.id)
}

// mustVertex panics with ErrNilVertex when v is nil.
func mustVertex(op string, v *Vertex) {
	if v == nil {
		panic(fmt.Errorf("%s: %w", op, ErrNilVertex))
	}
}
