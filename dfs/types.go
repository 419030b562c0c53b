// Package dfs defines the examiner callbacks, options and result types for
// depth-first edge classification over a core.UndirectedGraph.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvlcycle/core"
)

var (
	// ErrGraphNil is the panic value (wrapped) when a nil graph is searched.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrSourceNotMember is the panic value (wrapped) when the search source
	// is nil or not interned by the searched graph.
	ErrSourceNotMember = errors.New("dfs: source vertex not in graph")
)

// EdgeExaminer observes a classified edge. current is the vertex being expanded,
// neighbor the vertex at the other end of the edge.
type EdgeExaminer func(current, neighbor *core.Vertex)

// VertexExaminer observes a single vertex, e.g. the root of a depth-first tree.
type VertexExaminer func(v *core.Vertex)

// Option configures optional behavior of a Visitor or of Classify.
type Option func(*Options)

// Options holds the traversal knobs.
type Options struct {
	// Iterative selects the explicit-stack walk. Stack usage then no longer grows
	// with the depth of the graph; the callback order is identical.
	Iterative bool

	// FullTraversal makes Classify cover every component (forest mode) instead of
	// only the component containing the source.
	FullTraversal bool
}

// DefaultOptions returns recursive, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Iterative:     false,
		FullTraversal: false,
	}
}

// WithIterative selects the explicit-stack walk.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithFullTraversal makes Classify restart from every undiscovered vertex,
// covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Classification is the result-producing form of a depth-first search.
// Edges are oriented as {Source: current, Target: neighbor} at the time they were examined.
type Classification struct {
	// Roots lists the vertices each depth-first tree started from.
	Roots []core.VertexID

	// Discovery lists vertices in the order they were first reached.
	Discovery []core.VertexID

	// TreeEdges lists edges that discovered a new vertex, in discovery order.
	TreeEdges []core.Edge

	// BackEdges lists edges to a strict, non-parent ancestor. Each one closes a cycle.
	BackEdges []core.Edge

	// Parent maps every non-root discovered vertex to the vertex it was reached from.
	Parent map[core.VertexID]core.VertexID

	// Cycle is the witness cycle of the first back edge, [a, ..., current, a];
	// nil when the graph is acyclic.
	Cycle []core.VertexID
}

// HasCycle reports whether any back edge was found.
func (c *Classification) HasCycle() bool { return len(c.BackEdges) > 0 }
