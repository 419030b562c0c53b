package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcycle/builder"
	"github.com/katalvlaran/lvlcycle/edgelist"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		n      int
		offset int
		seed   int64
		name   string
	)
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Print an edge-list document for a generated topology",
		Long: "Generate prints a YAML edge-list document for one of the builder topologies:\n  " +
			strings.Join(builder.Kinds(), ", ") + "\n" +
			"For grid, --n is the side length; for binary-tree, the depth.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := builder.ByName(args[0], n)
			if err != nil {
				return err
			}
			edges, err := builder.Build([]builder.BuilderOption{
				builder.WithIDOffset(offset),
				builder.WithSeed(seed),
			}, ctor)
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("%s-%d", strings.ToLower(args[0]), n)
			}
			data, err := edgelist.Marshal(&edgelist.Document{
				Graphs: []edgelist.GraphSpec{edgelist.FromEdges(name, edges)},
			})
			if err != nil {
				return err
			}
			a.logger.Debug("generated", "kind", args[0], "n", n, "edges", len(edges))
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&n, "n", 5, "size parameter of the topology")
	flags.IntVar(&offset, "offset", 0, "first vertex ID")
	flags.Int64Var(&seed, "seed", 1, "seed for random topologies")
	flags.StringVar(&name, "name", "", "graph name (default KIND-N)")

	return cmd
}
