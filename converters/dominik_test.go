package converters_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcycle/builder"
	"github.com/katalvlaran/lvlcycle/converters"
	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/dfs"
)

func idHash(id core.VertexID) core.VertexID { return id }

func TestToDominik_PreservesTopology(t *testing.T) {
	g := core.NewUndirectedGraph([]core.Edge{
		{Source: 0, Target: 1}, {Source: 1, Target: 0}, {Source: 1, Target: 2}, {Source: 9, Target: 9},
	})

	dg, err := converters.ToDominik(g)
	require.NoError(t, err)
	assert.False(t, dg.Traits().IsDirected)

	order, err := dg.Order()
	require.NoError(t, err)
	assert.Equal(t, 4, order, "isolated vertex 9 is exported")

	size, err := dg.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	adj, err := dg.AdjacencyMap()
	require.NoError(t, err)
	assert.Contains(t, adj[1], core.VertexID(0))
	assert.Contains(t, adj[0], core.VertexID(1), "edges are undirected")
	assert.Empty(t, adj[9])

	var reached []core.VertexID
	require.NoError(t, graph.BFS(dg, 0, func(id core.VertexID) bool {
		reached = append(reached, id)
		return false
	}))
	assert.ElementsMatch(t, []core.VertexID{0, 1, 2}, reached)
}

func TestFromDominik_RoundTrip(t *testing.T) {
	edges := builder.MustBuild(nil, builder.Wheel(6), builder.Path(3))
	g := core.NewUndirectedGraph(edges)

	dg, err := converters.ToDominik(g)
	require.NoError(t, err)
	back, err := converters.FromDominik(dg)
	require.NoError(t, err)

	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.VertexCount(), back.VertexCount())
}

func TestFromDominik_IsolatedAndLoops(t *testing.T) {
	dg := graph.New(idHash)
	require.NoError(t, dg.AddVertex(3))
	require.NoError(t, dg.AddVertex(4))
	require.NoError(t, dg.AddVertex(5))
	require.NoError(t, dg.AddEdge(4, 5))

	g, err := converters.FromDominik(dg)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	v3, ok := g.VertexByID(3)
	require.True(t, ok)
	assert.Zero(t, g.Degree(v3))
}

func TestFromDominik_Errors(t *testing.T) {
	directed := graph.New(idHash, graph.Directed())
	_, err := converters.FromDominik(directed)
	assert.ErrorIs(t, err, converters.ErrDirectedGraph)

	_, err = converters.FromDominik(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = converters.ToDominik(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

// TestHasCycle_AgreesWithDFS cross-checks the library oracle against a forest DFS.
func TestHasCycle_AgreesWithDFS(t *testing.T) {
	fixtures := map[string][]builder.Constructor{
		"tree":          {builder.BinaryTree(5)},
		"forest":        {builder.Path(4), builder.Star(5), builder.RandomTree(20)},
		"cycle":         {builder.Cycle(8)},
		"late cycle":    {builder.Path(10), builder.Complete(4)},
		"grid":          {builder.Grid(3, 3)},
		"single vertex": {builder.Complete(1)},
	}
	for name, cons := range fixtures {
		t.Run(name, func(t *testing.T) {
			g := core.NewUndirectedGraph(builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, cons...))

			got, err := converters.HasCycle(g)
			require.NoError(t, err)

			res := dfs.Classify(g, nil, dfs.WithFullTraversal())
			assert.Equal(t, res.HasCycle(), got)
		})
	}
}
