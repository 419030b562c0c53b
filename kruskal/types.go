package kruskal

import (
	"github.com/katalvlaran/lvlcycle/core"
)

// Forest is the result of SpanningForest.
type Forest struct {
	// TreeEdges span every component, in the order they were accepted.
	TreeEdges []core.Edge

	// Redundant holds each edge that joined two vertices already connected
	// by TreeEdges.
	Redundant []core.Edge

	// Components is the number of connected components.
	Components int

	// component labels each vertex ID with a dense component number
	// (0..Components-1, in order of first vertex).
	component map[core.VertexID]int
}

// HasCycle reports whether any component contains a cycle.
func (f *Forest) HasCycle() bool { return len(f.Redundant) > 0 }

// CyclomaticNumber returns E - V + C, the number of independent cycles.
func (f *Forest) CyclomaticNumber() int { return len(f.Redundant) }

// ComponentOf returns the component label of id.
func (f *Forest) ComponentOf(id core.VertexID) (int, bool) {
	c, ok := f.component[id]
	return c, ok
}

// Connected reports whether a and b lie in the same component.
// Unknown IDs report false.
func (f *Forest) Connected(a, b core.VertexID) bool {
	ca, ok := f.component[a]
	if !ok {
		return false
	}
	cb, ok := f.component[b]

	return ok && ca == cb
}

// HasCycleFrom reports whether the component containing source has a cycle.
// An unknown source reports false.
func (f *Forest) HasCycleFrom(source core.VertexID) bool {
	c, ok := f.component[source]
	if !ok {
		return false
	}
	for _, e := range f.Redundant {
		if f.component[e.Source] == c {
			return true
		}
	}

	return false
}
