package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/analogy/internal/batch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// report is the YAML document written by the batch command.
type report struct {
	RunID   string         `yaml:"run_id"`
	Reports []batch.Report `yaml:"reports"`
}

func newBatchCmd(c *cli) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every equation of a YAML batch file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				fh, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fh.Close()
				in = fh
			}
			f, err := batch.Parse(in)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			r := &batch.Runner{
				Parallel: parallel,
				Logger:   c.logger(cmd.ErrOrStderr()).With("run_id", runID),
				Metrics:  c.collector(),
			}
			reports, runErr := r.Run(cmd.Context(), f)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report{RunID: runID, Reports: reports}); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}

			return c.dump(cmd, r.Metrics)
		},
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "equations solved concurrently (0: GOMAXPROCS)")

	return cmd
}
