package converters

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/lvlcycle/core"
)

// ErrDirectedGraph is returned when importing a directed dominikbraun graph.
var ErrDirectedGraph = errors.New("converters: directed graph not supported")

// vertexHash identifies a vertex by its own ID.
func vertexHash(id core.VertexID) core.VertexID { return id }

// ToDominik builds an undirected dominikbraun graph with the same vertices and edges as g.
func ToDominik(g *core.UndirectedGraph) (graph.Graph[core.VertexID, core.VertexID], error) {
	if g == nil {
		return nil, fmt.Errorf("ToDominik: %w", core.ErrNilGraph)
	}
	dg := graph.New(vertexHash)
	for _, v := range g.Vertices() {
		if err := dg.AddVertex(v.ID()); err != nil {
			return nil, fmt.Errorf("ToDominik: add vertex %d: %w", v.ID(), err)
		}
	}
	for _, e := range g.Edges() {
		if err := dg.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("ToDominik: add edge %v: %w", e, err)
		}
	}

	return dg, nil
}

// FromDominik converts an undirected dominikbraun graph into a core graph.
// Edges are emitted in ascending (Source, Target) order with Source ≤ Target.
func FromDominik(dg graph.Graph[core.VertexID, core.VertexID]) (*core.UndirectedGraph, error) {
	if dg == nil {
		return nil, fmt.Errorf("FromDominik: %w", core.ErrNilGraph)
	}
	if dg.Traits().IsDirected {
		return nil, fmt.Errorf("FromDominik: %w", ErrDirectedGraph)
	}
	adj, err := dg.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("FromDominik: adjacency: %w", err)
	}

	return core.NewUndirectedGraph(edgesOf(adj)), nil
}

// edgesOf flattens an undirected adjacency map into canonical edges.
func edgesOf(adj map[core.VertexID]map[core.VertexID]graph.Edge[core.VertexID]) []core.Edge {
	ids := sortedKeys(adj)
	edges := make([]core.Edge, 0, len(ids))
	for _, u := range ids {
		nbrs := adj[u]
		if len(nbrs) == 0 {
			edges = append(edges, core.Edge{Source: u, Target: u})
			continue
		}
		for _, v := range sortedKeys(nbrs) {
			if u <= v {
				edges = append(edges, core.Edge{Source: u, Target: v})
			}
		}
	}

	return edges
}

func sortedKeys[V any](m map[core.VertexID]V) []core.VertexID {
	keys := make([]core.VertexID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// HasCycle reports whether any component of g contains a cycle, using
// graph.CreatesCycle while inserting the edges one at a time: an edge whose
// endpoints are already connected closes a cycle.
func HasCycle(g *core.UndirectedGraph) (bool, error) {
	if g == nil {
		return false, fmt.Errorf("HasCycle: %w", core.ErrNilGraph)
	}
	dg := graph.New(vertexHash)
	for _, v := range g.Vertices() {
		if err := dg.AddVertex(v.ID()); err != nil {
			return false, fmt.Errorf("HasCycle: add vertex %d: %w", v.ID(), err)
		}
	}
	for _, e := range g.Edges() {
		closes, err := graph.CreatesCycle(dg, e.Source, e.Target)
		if err != nil {
			return false, fmt.Errorf("HasCycle: %v: %w", e, err)
		}
		if closes {
			return true, nil
		}
		if err := dg.AddEdge(e.Source, e.Target); err != nil {
			return false, fmt.Errorf("HasCycle: add edge %v: %w", e, err)
		}
	}

	return false, nil
}
