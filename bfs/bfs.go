package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlcycle/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// BFS runs breadth-first search on g starting from source.
// Returns ErrOptionViolation for bad options; panics with ErrGraphNil or
// ErrSourceNotMember on a precondition violation.
func BFS(g *core.UndirectedGraph, source *core.Vertex, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	mustSource("BFS", g, source)
	g.ResetVertices()

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]core.VertexID, 0, n),
		Depth:  make(map[core.VertexID]int, n),
		Parent: make(map[core.VertexID]core.VertexID, n),
	}

	// Seed queue with source (no parent)
	source.MarkDiscovered()
	res.Depth[source.ID()] = 0
	queue := []queueItem{{v: source}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.v.ID())
		o.OnVisit(item.v, item.depth)

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, nbr := range g.AdjacentVerticesOf(item.v) {
			if nbr.IsDiscovered() {
				continue
			}
			nbr.MarkDiscovered()
			nbr.SetParent(item.v)
			res.Depth[nbr.ID()] = next
			res.Parent[nbr.ID()] = item.v.ID()
			queue = append(queue, queueItem{v: nbr, depth: next})
		}
	}

	return res, nil
}

// HasCycle reports whether the component of g containing source has a cycle,
// using a breadth-first walk instead of edge classification.
//
// The neighbor that is the current vertex's parent is the edge the walk arrived
// by and is skipped; any other neighbor that is already discovered closes a cycle.
// Panics on the same preconditions as BFS.
func HasCycle(g *core.UndirectedGraph, source *core.Vertex) bool {
	mustSource("HasCycle", g, source)
	g.ResetVertices()

	source.MarkDiscovered()
	queue := []*core.Vertex{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, nbr := range g.AdjacentVerticesOf(u) {
			if nbr.IsParentOf(u) {
				continue
			}
			if nbr.IsDiscovered() {
				return true
			}
			nbr.MarkDiscovered()
			nbr.SetParent(u)
			queue = append(queue, nbr)
		}
	}

	return false
}

// mustSource panics unless g is non-nil and source is one of its vertices.
func mustSource(op string, g *core.UndirectedGraph, source *core.Vertex) {
	if g == nil {
		panic(fmt.Errorf("%s: %w", op, ErrGraphNil))
	}
	if !g.HasVertex(source) {
		panic(fmt.Errorf("%s(%v): %w", op, source, ErrSourceNotMember))
	}
}
