package dfs

import (
	"github.com/katalvlaran/lvlcycle/core"
)

// Classify runs a depth-first search and returns every classified edge instead
// of invoking callbacks.
//
// With WithFullTraversal the whole forest is classified and source is ignored
// (it may be nil); otherwise source must be a member of g.
// WithIterative selects the explicit-stack walk. The graph's traversal state is
// left as the search finished, so parent links can still be inspected.
func Classify(g *core.UndirectedGraph, source *core.Vertex, opts ...Option) *Classification {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	res := &Classification{}
	if g != nil {
		res.Parent = make(map[core.VertexID]core.VertexID, g.VertexCount())
		res.Discovery = make([]core.VertexID, 0, g.VertexCount())
	}

	dv := NewVisitor(opts...)
	dv.RegisterRootExaminer(func(root *core.Vertex) {
		res.Roots = append(res.Roots, root.ID())
		res.Discovery = append(res.Discovery, root.ID())
	})
	dv.RegisterTreeEdgeExaminer(func(current, neighbor *core.Vertex) {
		res.TreeEdges = append(res.TreeEdges, core.Edge{Source: current.ID(), Target: neighbor.ID()})
		res.Parent[neighbor.ID()] = current.ID()
		res.Discovery = append(res.Discovery, neighbor.ID())
	})
	dv.RegisterBackEdgeExaminer(func(current, neighbor *core.Vertex) {
		res.BackEdges = append(res.BackEdges, core.Edge{Source: current.ID(), Target: neighbor.ID()})
		if res.Cycle == nil {
			res.Cycle = CyclePath(current, neighbor)
		}
	})

	if o.FullTraversal {
		dv.SearchAll(g)
	} else {
		dv.Search(g, source)
	}

	return res
}
