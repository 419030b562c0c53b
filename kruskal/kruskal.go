// SPDX-License-Identifier: MIT

package kruskal

import (
	"errors"

	"github.com/katalvlaran/lvlcycle/core"
)

// ErrGraphNil is returned when SpanningForest is given a nil graph.
var ErrGraphNil = errors.New("kruskal: graph is nil")

// SpanningForest runs Kruskal's loop over g's canonical edge list.
//
// Steps:
//  1. Index the vertices densely in ID order.
//  2. For each edge (u,v): union(u,v) succeeds → tree edge, else → redundant.
//  3. Label components by their root, numbered by first vertex.
//
// An empty graph yields an empty forest with zero components.
func SpanningForest(g *core.UndirectedGraph) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	index := make(map[core.VertexID]int, len(vertices))
	for i, v := range vertices {
		index[v.ID()] = i
	}

	edges := g.Edges()
	dsu := newDisjointSet(len(vertices))
	f := &Forest{
		TreeEdges: make([]core.Edge, 0, len(vertices)),
		component: make(map[core.VertexID]int, len(vertices)),
	}
	for _, e := range edges {
		if dsu.union(index[e.Source], index[e.Target]) {
			f.TreeEdges = append(f.TreeEdges, e)
		} else {
			f.Redundant = append(f.Redundant, e)
		}
	}

	label := make(map[int]int, len(vertices))
	for i, v := range vertices {
		root := dsu.find(i)
		c, ok := label[root]
		if !ok {
			c = len(label)
			label[root] = c
		}
		f.component[v.ID()] = c
	}
	f.Components = len(label)

	return f, nil
}
