package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/analogy/internal/metrics"
	"github.com/spf13/cobra"
)

// cli holds the flags shared by every subcommand.
type cli struct {
	verbose bool
	metrics bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "analogy",
		Short:         "Solve analogical equations A:B::C:D",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log search progress to stderr")
	root.PersistentFlags().BoolVar(&c.metrics, "metrics", false, "dump Prometheus metrics to stderr when done")

	root.AddCommand(newSolveCmd(c), newBatchCmd(c))

	return root
}

func (c *cli) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// collector returns a metrics collector when --metrics is set.
func (c *cli) collector() *metrics.Collector {
	if !c.metrics {
		return nil
	}

	return metrics.New()
}

func (c *cli) dump(cmd *cobra.Command, m *metrics.Collector) error {
	if m == nil {
		return nil
	}

	return m.Write(cmd.ErrOrStderr())
}
