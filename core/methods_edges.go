// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge catalog derived from the adjacency sets.

package core

import "sort"

// EdgeCount returns the number of distinct undirected, non-loop edges.
func (g *UndirectedGraph) EdgeCount() int { return g.edgeCount }

// Edges returns every distinct edge in canonical form (Source < Target),
// sorted by Source then Target. Self-loops and duplicates never appear.
// Complexity: O(E log E).
func (g *UndirectedGraph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for slot, nbrs := range g.adjacency {
		from := g.vertices[slot].id
		for _, n := range nbrs {
			// each undirected edge is stored twice; keep the ascending copy
			if to := g.vertices[n].id; from < to {
				out = append(out, Edge{Source: from, Target: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}

		return out[i].Target < out[j].Target
	})

	return out
}

// HasEdge reports whether an undirected edge joins the vertices with IDs a and b.
// Unknown IDs and self-loops report false.
func (g *UndirectedGraph) HasEdge(a, b VertexID) bool {
	sa, ok := g.index[a]
	if !ok {
		return false
	}
	sb, ok := g.index[b]
	if !ok || sa == sb {
		return false
	}
	nbrs := g.adjacency[sa]
	i := sort.Search(len(nbrs), func(i int) bool { return g.vertices[nbrs[i]].id >= b })

	return i < len(nbrs) && nbrs[i] == sb
}
