// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - The clone keeps arena slot order, so neighbor and vertex iteration match the source.
// Concurrency:
//   - The source graph is only read. Each clone owns fresh traversal state, which is
//     how callers run concurrent searches over one topology.

package core

// Clone returns a copy of the graph with the same vertices, IDs and adjacency,
// and with every vertex reset (undiscovered, no parent).
//
// Vertices of the clone are distinct from the source's: g.HasVertex(clone vertex)
// is false and vice versa.
//
// Complexity: O(V + E)
func (g *UndirectedGraph) Clone() *UndirectedGraph {
	clone := &UndirectedGraph{
		vertices:       make([]Vertex, len(g.vertices)),
		index:          make(map[VertexID]int, len(g.index)),
		adjacency:      make([][]int, len(g.adjacency)),
		edgeCount:      g.edgeCount,
		loopsIgnored:   g.loopsIgnored,
		repeatsIgnored: g.repeatsIgnored,
	}
	for slot := range g.vertices {
		id := g.vertices[slot].id
		clone.vertices[slot] = Vertex{id: id, parent: noParent, owner: clone, slot: slot}
		clone.index[id] = slot
		clone.adjacency[slot] = append([]int(nil), g.adjacency[slot]...)
	}

	return clone
}
