package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcycle/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is the panic value (wrapped) when a nil graph is traversed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotMember is the panic value (wrapped) when the source is nil
	// or not interned by the traversed graph.
	ErrSourceNotMember = errors.New("bfs: source vertex not in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when a vertex is dequeued, with its depth from the source.
	OnVisit func(v *core.Vertex, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(*core.Vertex, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(v *core.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the source.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// PathTo reconstructs the path from the source vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
