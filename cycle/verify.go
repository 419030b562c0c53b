package cycle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcycle/converters"
	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/kruskal"
)

// ErrVerifyMismatch is returned when an independent check disagrees with a report.
var ErrVerifyMismatch = errors.New("cycle: verification mismatch")

// Verify re-derives rep's verdict for edges with github.com/dominikbraun/graph,
// restricted to the source's component unless rep.AllComponents is set.
func Verify(edges []core.Edge, rep *Report) error {
	return verify(core.NewUndirectedGraph(edges), rep)
}

func verify(g *core.UndirectedGraph, rep *Report) error {
	scope := g
	if !rep.AllComponents && g.VertexCount() > 0 {
		f, err := kruskal.SpanningForest(g)
		if err != nil {
			return err
		}
		var edges []core.Edge
		for _, e := range g.Edges() {
			if f.Connected(e.Source, rep.Source) {
				edges = append(edges, e)
			}
		}
		scope = core.NewUndirectedGraph(edges)
	}

	want, err := converters.HasCycle(scope)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if want != rep.HasCycle {
		return fmt.Errorf("%w: %s reported %t, graph library reports %t",
			ErrVerifyMismatch, rep.Strategy, rep.HasCycle, want)
	}

	return nil
}
