package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcycle/core"
	"github.com/katalvlaran/lvlcycle/cycle"
	"github.com/katalvlaran/lvlcycle/dfs"
	"github.com/katalvlaran/lvlcycle/edgelist"
	"github.com/katalvlaran/lvlcycle/internal/config"
)

// Reporting text of a verdict.
const (
	msgCycle   = "Graph contains a cycle"
	msgNoCycle = "Graph does NOT contain any cycles"
)

type checkFlags struct {
	strategy        string
	source          int
	firstEdgeSource bool
	all             bool
	concurrency     int
	json            bool
	metricsFile     string
	verify          bool
}

// checkOutput is one element of the --json array.
type checkOutput struct {
	Name   string        `json:"name"`
	Report *cycle.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func newCheckCommand(a *app) *cobra.Command {
	f := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check every graph of the given edge-list documents",
		Long: "Check loads YAML or JSON edge-list documents (\"-\" reads stdin) and reports,\n" +
			"for each graph, whether a cycle is reachable from the source vertex.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.overlayCheckFlags(cmd, f); err != nil {
				return err
			}
			return a.runCheck(cmd, f, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.strategy, "strategy", "", "traversal strategy: dfs, dfs-iterative, bfs, union-find")
	flags.IntVar(&f.source, "source", int(cycle.DefaultSource), "source vertex ID for graphs that do not set one")
	flags.BoolVar(&f.firstEdgeSource, "first-edge-source", false, "start from the source of each graph's first edge")
	flags.BoolVar(&f.all, "all", false, "check every connected component")
	flags.IntVar(&f.concurrency, "concurrency", cycle.DefaultConcurrency, "graphs checked in parallel")
	flags.BoolVar(&f.json, "json", false, "print a JSON array instead of text")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	flags.BoolVar(&f.verify, "verify", false, "cross-check every verdict with github.com/dominikbraun/graph")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, f *checkFlags, paths []string) error {
	var jobs []cycle.Job
	for _, path := range paths {
		doc, err := edgelist.Load(path)
		if err != nil {
			return err
		}
		for _, gs := range doc.Graphs {
			jobs = append(jobs, cycle.Job{
				Name:   path + "#" + gs.Name,
				Edges:  gs.ToEdges(),
				Source: gs.Source,
			})
		}
	}

	strategy, _ := cycle.ParseStrategy(a.cfg.Strategy)
	checkOpts := []cycle.Option{cycle.WithStrategy(strategy), cycle.WithSource(core.VertexID(f.source))}
	if f.firstEdgeSource {
		checkOpts = append(checkOpts, cycle.WithFirstEdgeSource())
	}
	if a.cfg.AllComponents {
		checkOpts = append(checkOpts, cycle.WithAllComponents())
	}

	reg := prometheus.NewRegistry()
	runnerOpts := []cycle.RunnerOption{
		cycle.WithConcurrency(a.cfg.Concurrency),
		cycle.WithCheckOptions(checkOpts...),
		cycle.WithLogger(a.logger),
		cycle.WithMetrics(cycle.NewMetrics(reg)),
	}
	if f.verify {
		runnerOpts = append(runnerOpts, cycle.WithVerify())
	}
	runner := cycle.NewRunner(runnerOpts...)
	results, err := runner.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	if a.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if a.cfg.Output == config.OutputJSON {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		writeText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}

	return nil
}

// verdict renders a report as the reporting text.
func verdict(rep *cycle.Report) string {
	if rep.HasCycle {
		return msgCycle
	}

	return msgNoCycle
}

func writeText(out, errOut io.Writer, results []cycle.Result) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(errOut, "%s: error: %v\n", res.Name, res.Err)
			continue
		}
		line := res.Name + ": " + verdict(res.Report)
		if len(res.Report.Cycle) > 0 {
			line += " (" + dfs.JoinPath(res.Report.Cycle, " → ") + ")"
		}
		fmt.Fprintln(out, line)
	}
}

func writeJSON(w io.Writer, results []cycle.Result) error {
	out := make([]checkOutput, len(results))
	for i, res := range results {
		out[i] = checkOutput{Name: res.Name, Report: res.Report}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
