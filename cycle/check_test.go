package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/cycle"
)

// referenceEdges is the 12-edge reference input; (5,9) closes 1–4–9–5.
func referenceEdges() []core.Edge {
	return []core.Edge{
		{Source: 0, Target: 1}, {Source: 0, Target: 2}, {Source: 0, Target: 3},
		{Source: 1, Target: 4}, {Source: 1, Target: 5}, {Source: 4, Target: 8},
		{Source: 4, Target: 9}, {Source: 3, Target: 6}, {Source: 3, Target: 7},
		{Source: 6, Target: 10}, {Source: 6, Target: 11}, {Source: 5, Target: 9},
	}
}

// referenceTree is referenceEdges without (5,9).
func referenceTree() []core.Edge {
	e := referenceEdges()
	return e[:len(e)-1]
}

func TestCheck_ReferenceScenarios(t *testing.T) {
	for _, s := range cycle.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			rep, err := cycle.Check(referenceEdges(), cycle.WithStrategy(s))
			require.NoError(t, err)
			assert.True(t, rep.HasCycle)
			assert.Equal(t, s, rep.Strategy)
			assert.Equal(t, core.VertexID(0), rep.Source)
			assert.Equal(t, 12, rep.Vertices)
			assert.Equal(t, 12, rep.Edges)

			rep, err = cycle.Check(referenceTree(), cycle.WithStrategy(s))
			require.NoError(t, err)
			assert.False(t, rep.HasCycle)
			assert.Empty(t, rep.BackEdges)
			assert.Empty(t, rep.Cycle)
		})
	}
}

func TestCheck_DepthFirstWitness(t *testing.T) {
	for _, s := range []cycle.Strategy{cycle.StrategyDFS, cycle.StrategyDFSIterative} {
		rep, err := cycle.Check(referenceEdges(), cycle.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, []core.Edge{{Source: 5, Target: 1}}, rep.BackEdges, s)
		assert.Equal(t, []core.VertexID{1, 4, 9, 5, 1}, rep.Cycle, s)
	}

	rep, err := cycle.Check(referenceEdges(), cycle.WithStrategy(cycle.StrategyBFS))
	require.NoError(t, err)
	assert.Nil(t, rep.BackEdges, "bfs reports the verdict only")
}

func TestCheck_UnionFindRedundantEdges(t *testing.T) {
	rep, err := cycle.Check(referenceEdges(), cycle.WithStrategy(cycle.StrategyUnionFind))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Source: 5, Target: 9}}, rep.Redundant)
	assert.Nil(t, rep.BackEdges)

	// the triangle's redundant edge is outside the source's component
	edges := []core.Edge{
		{Source: 5, Target: 6}, {Source: 6, Target: 7}, {Source: 7, Target: 5}, {Source: 0, Target: 1},
	}
	rep, err = cycle.Check(edges, cycle.WithStrategy(cycle.StrategyUnionFind))
	require.NoError(t, err)
	assert.False(t, rep.HasCycle)
	assert.Empty(t, rep.Redundant)

	rep, err = cycle.Check(edges, cycle.WithStrategy(cycle.StrategyUnionFind), cycle.WithAllComponents())
	require.NoError(t, err)
	assert.True(t, rep.HasCycle)
	assert.Equal(t, []core.Edge{{Source: 6, Target: 7}}, rep.Redundant)
}

func TestCheck_EmptyEdgeListIsAcyclic(t *testing.T) {
	for _, edges := range [][]core.Edge{nil, {}} {
		rep, err := cycle.Check(edges, cycle.WithSource(42))
		require.NoError(t, err)
		assert.False(t, rep.HasCycle)
		assert.Zero(t, rep.Vertices)
	}
}

func TestCheck_SourceSelection(t *testing.T) {
	// triangle 5-6-7 and an isolated edge 0-1
	edges := []core.Edge{
		{Source: 5, Target: 6}, {Source: 6, Target: 7}, {Source: 7, Target: 5}, {Source: 0, Target: 1},
	}

	rep, err := cycle.Check(edges)
	require.NoError(t, err)
	assert.False(t, rep.HasCycle, "default source 0 only sees its own component")

	rep, err = cycle.Check(edges, cycle.WithFirstEdgeSource())
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(5), rep.Source)
	assert.True(t, rep.HasCycle)

	rep, err = cycle.Check(edges, cycle.WithSource(7))
	require.NoError(t, err)
	assert.True(t, rep.HasCycle)

	for _, s := range cycle.Strategies() {
		rep, err = cycle.Check(edges, cycle.WithAllComponents(), cycle.WithStrategy(s))
		require.NoError(t, err)
		assert.True(t, rep.HasCycle, s)
		assert.True(t, rep.AllComponents)
	}
}

func TestCheck_Errors(t *testing.T) {
	_, err := cycle.Check([]core.Edge{{Source: 1, Target: 2}})
	assert.ErrorIs(t, err, cycle.ErrSourceNotFound, "vertex 0 is absent")

	_, err = cycle.Check(referenceEdges(), cycle.WithSource(99))
	assert.ErrorIs(t, err, cycle.ErrSourceNotFound)

	_, err = cycle.Check(referenceEdges(), cycle.WithStrategy("dijkstra"))
	assert.ErrorIs(t, err, cycle.ErrUnknownStrategy)

	// all-components mode needs no source
	ok, err := cycle.HasCycle([]core.Edge{{Source: 1, Target: 2}}, cycle.WithAllComponents())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheck_LoopsAndDuplicatesAreNotCycles(t *testing.T) {
	edges := []core.Edge{
		{Source: 0, Target: 0}, {Source: 0, Target: 1}, {Source: 1, Target: 0}, {Source: 0, Target: 1},
	}
	for _, s := range cycle.Strategies() {
		ok, err := cycle.HasCycle(edges, cycle.WithStrategy(s))
		require.NoError(t, err)
		assert.False(t, ok, s)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]cycle.Strategy{
		"":              cycle.StrategyDFS,
		"dfs":           cycle.StrategyDFS,
		" DFS-Iterative": cycle.StrategyDFSIterative,
		"bfs":           cycle.StrategyBFS,
		"Union-Find":    cycle.StrategyUnionFind,
	}
	for in, want := range cases {
		got, err := cycle.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := cycle.ParseStrategy("astar")
	assert.ErrorIs(t, err, cycle.ErrUnknownStrategy)
}
