// Package dfs implements the depth-first visitor that classifies the edges of an
// undirected core.UndirectedGraph as tree edges or back edges.
//
// Key features:
//   - Visitor.Search(g, source): recursive descent from a source vertex
//   - Visitor.SearchIterative(g, source): same walk on an explicit stack
//   - Visitor.SearchAll(g): forest traversal over every component
//   - Single-slot examiners for tree edges, back edges and tree roots
//
// Complexity:
//
//   - Time:   O(V + E·h) where h is the depth of the search tree (each
//     back-edge test walks a parent chain).
//   - Memory: O(V) for the recursion or explicit stack.
//
// Preconditions:
//
//   - A nil graph panics with ErrGraphNil.
//   - A source that is not interned by the graph panics with ErrSourceNotMember.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlcycle/core"
)

func noopEdge(_, _ *core.Vertex) {}

func noopVertex(_ *core.Vertex) {}

// Visitor performs depth-first searches and reports classified edges to its examiners.
//
// A Visitor keeps nothing between searches except its examiners and options.
// All traversal state lives on the graph's vertices and is reset at the start of
// every search.
type Visitor struct {
	treeEdge  EdgeExaminer
	backEdge  EdgeExaminer
	root      VertexExaminer
	iterative bool
}

// NewVisitor returns a Visitor with no-op examiners.
func NewVisitor(opts ...Option) *Visitor {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Visitor{
		treeEdge:  noopEdge,
		backEdge:  noopEdge,
		root:      noopVertex,
		iterative: o.Iterative,
	}
}

// RegisterTreeEdgeExaminer installs fn as the tree-edge observer, replacing the
// previous one. fn is called with (current, neighbor) right after neighbor's
// parent is set and before the walk descends into it. nil restores the no-op.
func (dv *Visitor) RegisterTreeEdgeExaminer(fn EdgeExaminer) {
	if fn == nil {
		fn = noopEdge
	}
	dv.treeEdge = fn
}

// RegisterBackEdgeExaminer installs fn as the back-edge observer, replacing the
// previous one. nil restores the no-op.
func (dv *Visitor) RegisterBackEdgeExaminer(fn EdgeExaminer) {
	if fn == nil {
		fn = noopEdge
	}
	dv.backEdge = fn
}

// RegisterRootExaminer installs fn as the observer called once per depth-first
// tree, with its root, before the tree is explored. nil restores the no-op.
func (dv *Visitor) RegisterRootExaminer(fn VertexExaminer) {
	if fn == nil {
		fn = noopVertex
	}
	dv.root = fn
}

// Search resets g's traversal state and walks depth-first from source.
// It uses the explicit stack when the Visitor was built WithIterative.
//
// Panics with ErrGraphNil or ErrSourceNotMember on a precondition violation.
func (dv *Visitor) Search(g *core.UndirectedGraph, source *core.Vertex) {
	mustSource("Search", g, source)
	g.ResetVertices()
	dv.descend(g, source)
}

// SearchIterative is Search on an explicit stack regardless of the Visitor's options.
// Discovery order, parent assignment and examiner call order match the recursive walk.
func (dv *Visitor) SearchIterative(g *core.UndirectedGraph, source *core.Vertex) {
	mustSource("SearchIterative", g, source)
	g.ResetVertices()
	dv.root(source)
	dv.walkStack(g, source)
}

// SearchAll resets g's traversal state once and starts a depth-first tree from
// every vertex still undiscovered, in ascending ID order.
// Panics with ErrGraphNil when g is nil.
func (dv *Visitor) SearchAll(g *core.UndirectedGraph) {
	if g == nil {
		panic(fmt.Errorf("SearchAll: %w", ErrGraphNil))
	}
	g.ResetVertices()
	for _, v := range g.Vertices() {
		if !v.IsDiscovered() {
			dv.descend(g, v)
		}
	}
}

// IsBackEdge reports whether the edge (current, neighbor) is a back edge:
// neighbor is not current's parent, and neighbor is an ancestor of current.
//
// In an undirected depth-first search every non-tree edge joins a vertex to one
// of its ancestors, so each back edge closes a cycle. The edge back to the
// immediate parent is always present in undirected adjacency and is excluded.
func IsBackEdge(current, neighbor *core.Vertex) bool {
	// A child cannot also be an ancestor; skipping the chain walk keeps
	// deep chains linear.
	if current.IsParentOf(neighbor) {
		return false
	}

	return !neighbor.IsParentOf(current) && core.IsAncestor(neighbor, current)
}

// descend starts one depth-first tree at root.
func (dv *Visitor) descend(g *core.UndirectedGraph, root *core.Vertex) {
	dv.root(root)
	if dv.iterative {
		dv.walkStack(g, root)
		return
	}
	dv.walk(g, root)
}

// walk is the recursive descent.
func (dv *Visitor) walk(g *core.UndirectedGraph, current *core.Vertex) {
	// 1. Mark discovered
	current.MarkDiscovered()

	// 2. Explore each neighbor
	for _, nbr := range g.AdjacentVerticesOf(current) {
		if !nbr.IsDiscovered() {
			nbr.SetParent(current)
			dv.treeEdge(current, nbr)
			dv.walk(g, nbr)
		}

		// runs for fresh and already discovered neighbors alike
		dv.examineBackEdge(current, nbr)
	}
}

// frame is one level of the explicit stack.
type frame struct {
	vertex *core.Vertex
	nbrs   []*core.Vertex
	next   int          // index of the next neighbor to examine
	child  *core.Vertex // neighbor descended into; its back-edge test runs on resume
}

// walkStack is walk with the call stack made explicit.
func (dv *Visitor) walkStack(g *core.UndirectedGraph, source *core.Vertex) {
	source.MarkDiscovered()
	stack := []frame{{vertex: source, nbrs: g.AdjacentVerticesOf(source)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Returning from a child: finish the test the recursive walk runs after the call.
		if top.child != nil {
			dv.examineBackEdge(top.vertex, top.child)
			top.child = nil
		}

		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		if nbr.IsDiscovered() {
			dv.examineBackEdge(top.vertex, nbr)
			continue
		}

		nbr.SetParent(top.vertex)
		dv.treeEdge(top.vertex, nbr)
		top.child = nbr // set before append: top may move

		nbr.MarkDiscovered()
		stack = append(stack, frame{vertex: nbr, nbrs: g.AdjacentVerticesOf(nbr)})
	}
}

func (dv *Visitor) examineBackEdge(current, neighbor *core.Vertex) {
	if IsBackEdge(current, neighbor) {
		dv.backEdge(current, neighbor)
	}
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
