// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers for lvlcycle/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcycle/core"
)

// Reference edge lists: a 12-vertex tree and the same tree plus edge (5,9).
var (
	treeEdges = []core.Edge{
		{0, 1}, {0, 2}, {0, 3}, {1, 4}, {1, 5}, {4, 8},
		{4, 9}, {3, 6}, {3, 7}, {6, 10}, {6, 11},
	}
	cyclicEdges = append(append([]core.Edge(nil), treeEdges...), core.Edge{Source: 5, Target: 9})
)

// mustVertex fetches an interned vertex or fails the test.
func mustVertex(t *testing.T, g *core.UndirectedGraph, id core.VertexID) *core.Vertex {
	t.Helper()
	v, ok := g.VertexByID(id)
	require.True(t, ok, "vertex %d must exist", id)

	return v
}

// requirePanicIs runs fn and requires it to panic with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// ids maps vertices to their IDs, preserving order.
func ids(vs []*core.Vertex) []core.VertexID {
	out := make([]core.VertexID, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}
