package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/cycle"
)

// demoEdgesWithCycle is the reference input; the edge (5,9) closes 1-4-9-5.
var demoEdgesWithCycle = []core.Edge{
	{Source: 0, Target: 1}, {Source: 0, Target: 2}, {Source: 0, Target: 3},
	{Source: 1, Target: 4}, {Source: 1, Target: 5}, {Source: 4, Target: 8},
	{Source: 4, Target: 9}, {Source: 3, Target: 6}, {Source: 3, Target: 7},
	{Source: 6, Target: 10}, {Source: 6, Target: 11}, {Source: 5, Target: 9},
}

// demoEdgesWithoutCycle is the same tree without (5,9), in its own backing array.
var demoEdgesWithoutCycle = slices.Clone(demoEdgesWithCycle[:len(demoEdgesWithCycle)-1])

func newDemoCommand(a *app) *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Check the two built-in reference graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strategy") {
				a.cfg.Strategy = strategy
			}
			s, err := cycle.ParseStrategy(a.cfg.Strategy)
			if err != nil {
				return err
			}
			for _, edges := range [][]core.Edge{demoEdgesWithCycle, demoEdgesWithoutCycle} {
				rep, err := cycle.Check(edges, cycle.WithStrategy(s))
				if err != nil {
					return err
				}
				a.logger.Debug("demo graph checked", "edges", len(edges), "has_cycle", rep.HasCycle)
				fmt.Fprintln(cmd.OutOrStdout(), verdict(rep))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "traversal strategy: dfs, dfs-iterative, bfs, union-find")

	return cmd
}
