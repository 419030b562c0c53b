// Package edgelist reads and writes edge-list documents: named graphs given as
// lists of undirected edges, in YAML (or JSON, which parses as YAML).
//
//	graphs:
//	  - name: with-cycle
//	    source: 0            # optional start vertex
//	    edges: [[0, 1], [1, 2], {source: 2, target: 0}]
//
// Each edge is either a two-element sequence [source, target] or a mapping with
// both source and target keys. Anything else is rejected with ErrMalformedEdge,
// and the error carries the document line.
package edgelist
