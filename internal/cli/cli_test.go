package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcycle/builder"
	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/edgelist"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const graphsDoc = `graphs:
  - name: square
    edges: [[0, 1], [1, 2], [2, 3], [3, 0]]
  - name: tree
    edges: [[0, 1], [0, 2], [2, 3]]
  - name: offset-triangle
    source: 7
    edges: [[7, 8], [8, 9], [9, 7]]
`

func TestDemo_PrintsReferenceVerdicts(t *testing.T) {
	for _, strategy := range []string{"dfs", "dfs-iterative", "bfs", "union-find"} {
		out, _, err := run(t, "demo", "--strategy", strategy)
		require.NoError(t, err, strategy)
		assert.Equal(t, "Graph contains a cycle\nGraph does NOT contain any cycles\n", out, strategy)
	}
}

func TestDemo_EdgeListsAreIndependent(t *testing.T) {
	require.Len(t, demoEdgesWithoutCycle, len(demoEdgesWithCycle)-1)
	assert.Equal(t, len(demoEdgesWithoutCycle), cap(demoEdgesWithoutCycle))

	grown := append(demoEdgesWithoutCycle, core.Edge{Source: 42, Target: 43})
	assert.Len(t, grown, len(demoEdgesWithCycle))
	assert.Equal(t, core.Edge{Source: 5, Target: 9}, demoEdgesWithCycle[len(demoEdgesWithCycle)-1])
}

func TestCheck_Text(t *testing.T) {
	path := writeFile(t, "graphs.yaml", graphsDoc)

	out, _, err := run(t, "check", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, path+"#square: Graph contains a cycle (0 → 1 → 2 → 3 → 0)", lines[0])
	assert.Equal(t, path+"#tree: Graph does NOT contain any cycles", lines[1])
	assert.Equal(t, path+"#offset-triangle: Graph contains a cycle (7 → 8 → 9 → 7)", lines[2])
}

func TestCheck_JSON(t *testing.T) {
	path := writeFile(t, "graphs.yaml", graphsDoc)

	out, _, err := run(t, "check", "--json", "--strategy", "bfs", path)
	require.NoError(t, err)

	var got []struct {
		Name   string `json:"name"`
		Report struct {
			HasCycle bool   `json:"has_cycle"`
			Strategy string `json:"strategy"`
			Source   int    `json:"source"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.True(t, got[0].Report.HasCycle)
	assert.False(t, got[1].Report.HasCycle)
	assert.Equal(t, "bfs", got[2].Report.Strategy)
	assert.Equal(t, 7, got[2].Report.Source)
}

func TestCheck_VerifyUnionFind(t *testing.T) {
	path := writeFile(t, "graphs.yaml", graphsDoc)

	out, _, err := run(t, "check", "--verify", "--strategy", "union-find", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, path+"#square: Graph contains a cycle", lines[0])
	assert.Equal(t, path+"#tree: Graph does NOT contain any cycles", lines[1])
	assert.Equal(t, path+"#offset-triangle: Graph contains a cycle", lines[2])
}

func TestCheck_SourceFlagsAndFailures(t *testing.T) {
	path := writeFile(t, "g.yaml", "graphs:\n  - name: far\n    edges: [[5, 6], [6, 7], [7, 5]]\n")

	_, errOut, err := run(t, "check", path)
	require.Error(t, err, "vertex 0 is absent")
	assert.Contains(t, errOut, "source vertex not found")

	out, _, err := run(t, "check", "--source", "6", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph contains a cycle")

	out, _, err = run(t, "check", "--first-edge-source", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph contains a cycle")

	out, _, err = run(t, "check", "--all", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph contains a cycle")
}

func TestCheck_InvalidInput(t *testing.T) {
	_, _, err := run(t, "check")
	assert.Error(t, err, "at least one file")

	_, _, err = run(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "graphs: [{edges: [[1, 2, 3]]}]")
	_, _, err = run(t, "check", bad)
	assert.ErrorIs(t, err, edgelist.ErrMalformedEdge)

	good := writeFile(t, "good.yaml", graphsDoc)
	_, _, err = run(t, "check", "--strategy", "astar", good)
	assert.Error(t, err)
	_, _, err = run(t, "check", "--concurrency", "0", good)
	assert.Error(t, err)
}

func TestCheck_ConfigFileAndMetrics(t *testing.T) {
	cfgPath := writeFile(t, "cyclecheck.yaml", "strategy: dfs-iterative\noutput: json\nlog_level: debug\n")
	path := writeFile(t, "graphs.yaml", graphsDoc)
	metrics := filepath.Join(t.TempDir(), "metrics.prom")

	out, errOut, err := run(t, "--config", cfgPath, "check", "--metrics-file", metrics, path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "["), "output: json from the config file")
	assert.Contains(t, out, `"strategy": "dfs-iterative"`)
	assert.Contains(t, errOut, "cycle checked", "debug logging goes to stderr")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvlcycle_checks_total{result="cyclic"} 2`)
	assert.Contains(t, string(data), `lvlcycle_checks_total{result="acyclic"} 1`)

	_, _, err = run(t, "--log-level", "chatty", "demo")
	assert.Error(t, err)
}

func TestCheck_JSONFlagOverridesConfig(t *testing.T) {
	cfgPath := writeFile(t, "cyclecheck.yaml", "output: json\nlog_level: \"\"\n")
	path := writeFile(t, "graphs.yaml", graphsDoc)

	out, _, err := run(t, "--config", cfgPath, "check", "--json=false", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, path+"#square: Graph contains a cycle"), out)

	out, _, err = run(t, "--config", cfgPath, "check", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "["))
}

func TestGenerate_RoundTripsThroughCheck(t *testing.T) {
	out, _, err := run(t, "generate", "wheel", "--n", "5", "--offset", "10")
	require.NoError(t, err)

	doc, err := edgelist.Parse([]byte(out))
	require.NoError(t, err)
	require.Len(t, doc.Graphs, 1)
	assert.Equal(t, "wheel-5", doc.Graphs[0].Name)
	assert.Len(t, doc.Graphs[0].Edges, 8)

	path := writeFile(t, "wheel.yaml", out)
	checked, _, err := run(t, "check", "--source", "10", path)
	require.NoError(t, err)
	assert.Contains(t, checked, "Graph contains a cycle")

	_, _, err = run(t, "generate", "hexagram")
	assert.Error(t, err)
	_, _, err = run(t, "generate", "cycle", "--n", "2")
	assert.Error(t, err)
	_, _, err = run(t, "generate", "complete", "--n", "1000000")
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
