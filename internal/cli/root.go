// Package cli implements the cyclecheck command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcycle/internal/config"
)

// app is the state shared by the commands of one tree.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds a fresh cyclecheck command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cyclecheck",
		Short: "Detect cycles in undirected graphs",
		Long: "cyclecheck reads undirected edge lists and reports whether they contain a cycle,\n" +
			"using depth-first edge classification (or a breadth-first check).",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newCheckCommand(a))
	root.AddCommand(newDemoCommand(a))
	root.AddCommand(newGenerateCommand(a))

	return root
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config, overlays the persistent flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), lvl)
	a.logger.Debug("configuration loaded", "path", a.configPath, "strategy", cfg.Strategy, "concurrency", cfg.Concurrency)

	return nil
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// overlayCheckFlags copies the explicitly set check flags into the config and validates it.
func (a *app) overlayCheckFlags(cmd *cobra.Command, f *checkFlags) error {
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		a.cfg.Strategy = f.strategy
	}
	if flags.Changed("concurrency") {
		a.cfg.Concurrency = f.concurrency
	}
	if flags.Changed("all") {
		a.cfg.AllComponents = f.all
	}
	if flags.Changed("json") {
		a.cfg.Output = config.OutputText
		if f.json {
			a.cfg.Output = config.OutputJSON
		}
	}
	if flags.Changed("metrics-file") {
		a.cfg.MetricsFile = f.metricsFile
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}
