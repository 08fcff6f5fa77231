package main

import (
	"fmt"

	"github.com/katalvlaran/analogy/internal/batch"
	"github.com/katalvlaran/analogy/value"
	"github.com/spf13/cobra"
)

func newSolveCmd(c *cli) *cobra.Command {
	var (
		s           batch.Settings
		unique      bool
		fastForward bool
	)
	cmd := &cobra.Command{
		Use:   "solve A B C",
		Short: "Solve A:B::C:? and print degree<TAB>value per solution",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := batch.ParseSplit(s.Split)
			if err != nil {
				return err
			}
			s.Unique, s.FastForward = &unique, &fastForward

			log := c.logger(cmd.ErrOrStderr())
			opts, err := s.Options(cmd.Context(), log)
			if err != nil {
				return err
			}
			m := c.collector()
			if m != nil {
				opts = append(opts, m.Options()...)
			}

			eq, err := value.NewEquation(sp.Scalar(args[0]), sp.Scalar(args[1]), sp.Scalar(args[2]), opts...)
			if err != nil {
				return err
			}
			sols, err := s.Drain(s.Filter(eq.Solve()))
			for _, sol := range sols {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", sol.Degree(), sol.Value())
			}
			if err != nil {
				return err
			}
			if len(sols) == 0 {
				log.Info("no solution", "a", args[0], "b", args[1], "c", args[2])
			}

			return c.dump(cmd, m)
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.Split, "split", string(batch.SplitChars), "operand splitting: chars, words or none")
	f.IntVar(&s.Best, "best", 0, "keep only the k cheapest degree tiers (0: all)")
	f.BoolVar(&unique, "unique", true, "drop repeated solution values")
	f.IntVar(&s.Limit, "limit", batch.DefaultLimit, "maximum number of solutions (-1: all)")
	f.StringVar(&s.DegreeMode, "degree-mode", "runs", "degree measure: runs or factors")
	f.IntVar(&s.MaxExpansions, "max-expansions", 0, "search budget in expanded heads (0: unlimited)")
	f.BoolVar(&fastForward, "fast-forward", true, "compress runs of insertions greedily")

	return cmd
}
