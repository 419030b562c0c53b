// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge, Vertex and UndirectedGraph declarations plus sentinel errors.
// Policy:
//   - Vertex records live in one dense arena owned by the graph; parent links and
//     adjacency are arena slot indices, never owning pointers.
//   - The arena is sized once at construction and never grows, so *Vertex handles
//     returned by the graph stay valid for the graph's lifetime.
//
// Errors:
//
//	ErrNilVertex       - vertex pointer is nil.
//	ErrVertexNotMember - vertex is not interned by the graph it was passed to.
//	ErrSelfParent      - attempt to make a vertex its own parent.
//	ErrForeignVertex   - parent and child belong to different graphs.
//	ErrParentCycle     - parent links loop back on themselves.
//
// All of them describe programming errors. Operations that detect them panic with
// a wrapped sentinel so the fault cannot be masked; recover + errors.Is still works.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *UndirectedGraph was passed to an adapter.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNilVertex indicates that a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotMember indicates a vertex that is not interned by the graph.
	ErrVertexNotMember = errors.New("core: vertex is not a member of the graph")

	// ErrSelfParent indicates an attempt to set a vertex as its own parent.
	ErrSelfParent = errors.New("core: vertex cannot be its own parent")

	// ErrForeignVertex indicates a parent link between vertices of different graphs
	// (or involving a free-standing vertex).
	ErrForeignVertex = errors.New("core: vertices belong to different graphs")

	// ErrParentCycle indicates that following parent links never reaches a root.
	ErrParentCycle = errors.New("core: parent links form a cycle")
)

// noParent marks a vertex without a parent link.
const noParent = -1

// freeSlot is the slot of a free-standing vertex (one created by NewVertex).
const freeSlot = -1

// VertexID is the stable, externally supplied identity of a vertex.
type VertexID int

// Edge is an unordered pair of vertex IDs as supplied by the caller.
//
// Edges with Source == Target are self-loops; the graph registers the vertex
// and ignores the loop. Repeated pairs, in either orientation, are idempotent.
type Edge struct {
	// Source is one endpoint of the edge.
	Source VertexID `json:"source" yaml:"source"`

	// Target is the other endpoint of the edge.
	Target VertexID `json:"target" yaml:"target"`
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// Canonical returns the edge with Source <= Target.
// Two edges describe the same undirected connection iff their canonical forms are equal.
func (e Edge) Canonical() Edge {
	if e.Source > e.Target {
		return Edge{Source: e.Target, Target: e.Source}
	}

	return e
}

// String renders the edge as "(source,target)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.Source, e.Target) }

// Vertex carries a vertex identity plus the traversal state mutated by searches.
//
// A Vertex obtained from an UndirectedGraph is a handle into that graph's arena.
// A Vertex created with NewVertex is free-standing: it belongs to no graph, is
// never a member of one, and can neither have nor be a parent.
type Vertex struct {
	id         VertexID
	discovered bool
	parent     int // arena slot of the parent, noParent when unset

	owner *UndirectedGraph // nil for free-standing vertices
	slot  int              // index into owner.vertices, freeSlot when free-standing
}

// NewVertex creates a free-standing vertex with the given ID.
// It is undiscovered and has no parent.
func NewVertex(id VertexID) *Vertex {
	return &Vertex{id: id, parent: noParent, slot: freeSlot}
}

// UndirectedGraph is an immutable adjacency-set graph built from an edge list.
//
// It interns exactly one Vertex per ID. Traversal state (discovered, parent) lives
// on those vertices and is shared by every search over the graph, so a graph must
// not be traversed from several goroutines at once; use Clone for that.
type UndirectedGraph struct {
	// vertices is the arena; slot order is first-appearance order in the edge list.
	vertices []Vertex

	// index maps a vertex ID to its arena slot.
	index map[VertexID]int

	// adjacency[slot] holds neighbor slots sorted by neighbor ID, without duplicates.
	adjacency [][]int

	edgeCount      int // distinct non-loop undirected edges
	loopsIgnored   int // self-loop edges seen during construction
	repeatsIgnored int // duplicate non-loop edges seen during construction
}

// GraphStats is a read-only summary of a graph and of what construction normalized.
type GraphStats struct {
	VertexCount       int // interned vertices
	EdgeCount         int // distinct undirected edges
	IsolatedCount     int // vertices without neighbors
	MaxDegree         int // largest adjacency set
	SelfLoopsIgnored  int // (v,v) input edges that only registered v
	DuplicatesIgnored int // repeated input edges, in either orientation
}
