// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph construction and read-only summary.
// Policy:
//   - Construction is the only time vertices are created.
//   - Two passes: intern IDs (sizing the arena exactly once), then fill adjacency.

package core

import "sort"

// NewUndirectedGraph builds an undirected graph from an edge list.
//
// Implementation:
//   - Stage 1: Intern every endpoint in first-appearance order and size the arena.
//   - Stage 2: For each non-loop edge, record the canonical pair once and add both
//     endpoints to each other's adjacency set.
//   - Stage 3: Sort every adjacency set by neighbor ID for deterministic iteration.
//
// Behavior highlights:
//   - Self-loops (v,v) register v with no self-adjacency.
//   - Duplicate edges, including reversed duplicates (a,b)/(b,a), are idempotent.
//   - A nil or empty edge list yields an empty graph.
//
// Complexity:
//   - Time O(V log V + E log d), Space O(V + E).
func NewUndirectedGraph(edges []Edge) *UndirectedGraph {
	// Stage 1: intern IDs.
	order := make([]VertexID, 0, 2*len(edges))
	index := make(map[VertexID]int, 2*len(edges))
	intern := func(id VertexID) {
		if _, ok := index[id]; !ok {
			index[id] = len(order)
			order = append(order, id)
		}
	}
	for _, e := range edges {
		intern(e.Source)
		intern(e.Target)
	}

	g := &UndirectedGraph{
		vertices:  make([]Vertex, len(order)),
		index:     index,
		adjacency: make([][]int, len(order)),
	}
	for slot, id := range order {
		g.vertices[slot] = Vertex{id: id, parent: noParent, owner: g, slot: slot}
	}

	// Stage 2: adjacency sets.
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			g.loopsIgnored++
			continue
		}
		key := e.Canonical()
		if _, dup := seen[key]; dup {
			g.repeatsIgnored++
			continue
		}
		seen[key] = struct{}{}

		s, t := index[e.Source], index[e.Target]
		g.adjacency[s] = append(g.adjacency[s], t)
		g.adjacency[t] = append(g.adjacency[t], s)
		g.edgeCount++
	}

	// Stage 3: deterministic neighbor order.
	for slot := range g.adjacency {
		nbrs := g.adjacency[slot]
		sort.Slice(nbrs, func(i, j int) bool {
			return g.vertices[nbrs[i]].id < g.vertices[nbrs[j]].id
		})
	}

	return g
}

// Stats produces a snapshot of sizes and of what construction normalized away.
// Complexity: O(V).
func (g *UndirectedGraph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:       len(g.vertices),
		EdgeCount:         g.edgeCount,
		SelfLoopsIgnored:  g.loopsIgnored,
		DuplicatesIgnored: g.repeatsIgnored,
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
	}

	return &stats
}
