package builder

import "github.com/katalvlaran/lvlcycle/core"

// edgeSink accumulates the edges emitted by constructors during one Build.
// Each constructor reserves a block of indices; local index i of the block
// maps to cfg.idFn(base+i).
type edgeSink struct {
	edges []core.Edge
	base  int // first index of the current block
	next  int // first index not yet reserved
}

// reserve opens a block of n fresh indices for the next constructor.
func (s *edgeSink) reserve(n int) {
	s.base = s.next
	s.next += n
}

// id resolves a block-local index.
func (s *edgeSink) id(cfg builderConfig, i int) core.VertexID {
	return cfg.idFn(s.base + i)
}

// edge emits the undirected edge between block-local indices i and j.
func (s *edgeSink) edge(cfg builderConfig, i, j int) {
	s.edges = append(s.edges, core.Edge{Source: s.id(cfg, i), Target: s.id(cfg, j)})
}

// single registers block-local index i alone, as a self-loop.
func (s *edgeSink) single(cfg builderConfig, i int) {
	s.edge(cfg, i, i)
}
