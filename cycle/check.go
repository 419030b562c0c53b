package cycle

import (
	"fmt"

	"github.com/katalvlaran/lvlcycle/bfs"
	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/dfs"
	"github.com/katalvlaran/lvlcycle/kruskal"
)

// Report is the outcome of one check.
type Report struct {
	HasCycle      bool            `json:"has_cycle"`
	Strategy      Strategy        `json:"strategy"`
	Source        core.VertexID   `json:"source"`
	AllComponents bool            `json:"all_components,omitempty"`
	Vertices      int             `json:"vertices"`
	Edges         int             `json:"edges"`
	BackEdges     []core.Edge     `json:"back_edges,omitempty"`
	Cycle         []core.VertexID `json:"cycle,omitempty"`
	Redundant     []core.Edge     `json:"redundant_edges,omitempty"`
	Fingerprint   uint64          `json:"fingerprint"`
}

// clone copies rep with its own BackEdges, Cycle and Redundant slices.
func (rep Report) clone() Report {
	out := rep
	if rep.BackEdges != nil {
		out.BackEdges = append([]core.Edge(nil), rep.BackEdges...)
	}
	if rep.Cycle != nil {
		out.Cycle = append([]core.VertexID(nil), rep.Cycle...)
	}
	if rep.Redundant != nil {
		out.Redundant = append([]core.Edge(nil), rep.Redundant...)
	}

	return out
}

// Check reports whether the graph built from edges contains a cycle reachable
// from the chosen source (or anywhere, with WithAllComponents).
//
// An empty edge list is acyclic and needs no source. Otherwise a source ID that
// is not an endpoint of any edge yields ErrSourceNotFound.
func Check(edges []core.Edge, opts ...Option) (*Report, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	g := core.NewUndirectedGraph(edges)

	return o.check(g, o.sourceFor(edges), Fingerprint(g))
}

// HasCycle is Check reduced to its verdict.
func HasCycle(edges []core.Edge, opts ...Option) (bool, error) {
	rep, err := Check(edges, opts...)
	if err != nil {
		return false, err
	}

	return rep.HasCycle, nil
}

// check runs the configured strategy on g. g must not be traversed concurrently.
func (o Options) check(g *core.UndirectedGraph, sourceID core.VertexID, fp uint64) (*Report, error) {
	rep := &Report{
		Strategy:      o.Strategy,
		Source:        sourceID,
		AllComponents: o.AllComponents,
		Vertices:      g.VertexCount(),
		Edges:         g.EdgeCount(),
		Fingerprint:   fp,
	}
	if g.VertexCount() == 0 {
		return rep, nil
	}

	var source *core.Vertex
	if !o.AllComponents {
		v, ok := g.VertexByID(sourceID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, sourceID)
		}
		source = v
	}

	switch o.Strategy {
	case StrategyDFS, StrategyDFSIterative:
		dopts := []dfs.Option{}
		if o.Strategy == StrategyDFSIterative {
			dopts = append(dopts, dfs.WithIterative())
		}
		if o.AllComponents {
			dopts = append(dopts, dfs.WithFullTraversal())
		}
		res := dfs.Classify(g, source, dopts...)
		rep.HasCycle = res.HasCycle()
		rep.BackEdges = res.BackEdges
		rep.Cycle = res.Cycle

	case StrategyBFS:
		if o.AllComponents {
			rep.HasCycle = bfsForest(g)
		} else {
			rep.HasCycle = bfs.HasCycle(g, source)
		}

	case StrategyUnionFind:
		f, err := kruskal.SpanningForest(g)
		if err != nil {
			return nil, err
		}
		if o.AllComponents {
			rep.HasCycle = f.HasCycle()
			rep.Redundant = f.Redundant
		} else {
			rep.HasCycle = f.HasCycleFrom(sourceID)
			for _, e := range f.Redundant {
				if f.Connected(e.Source, sourceID) {
					rep.Redundant = append(rep.Redundant, e)
				}
			}
		}

	default:
		return nil, o.Strategy.Validate()
	}

	return rep, nil
}

// bfsForest runs the breadth-first check once per component, rooted at the
// smallest ID of each.
func bfsForest(g *core.UndirectedGraph) bool {
	covered := make(map[core.VertexID]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if covered[v.ID()] {
			continue
		}
		res, _ := bfs.BFS(g, v)
		for _, id := range res.Order {
			covered[id] = true
		}
		if bfs.HasCycle(g, v) {
			return true
		}
	}

	return false
}
