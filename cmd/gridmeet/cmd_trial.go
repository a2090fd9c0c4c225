package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/gridmeet/internal/config"
	"github.com/nvandessel/gridmeet/internal/grid"
	"github.com/nvandessel/gridmeet/internal/logging"
	"github.com/nvandessel/gridmeet/internal/visualization"
	"github.com/nvandessel/gridmeet/internal/walk"
)

func newTrialCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Run a single narrated trial",
		Long: `Run one trial and narrate it round by round: both walker positions
and the Manhattan distance between them, then whether they met and where.

Examples:
  gridmeet trial --n 5 --seed 42
  gridmeet trial --n 5 --plot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			seed, _ := cmd.Flags().GetUint64("seed")
			plot, _ := cmd.Flags().GetBool("plot")
			jsonOut, _ := cmd.Flags().GetBool("json")

			src := walk.NewRandomCoinSource()
			if seed != 0 {
				src = walk.NewCoinSource(seed)
			}

			result, err := walk.RunTrial(n, src)
			if err != nil {
				return err
			}

			if tracer := logging.NewTrialLogger(cfg.Logging.TracePath); tracer != nil {
				tracer.Log(result)
				tracer.Close()
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Grid %dx%d: near walker at %s, far walker at %s, distance %d\n",
				n, n, result.NearPath[0], result.FarPath[0], result.Distance(0))

			for round := 1; round <= result.StepsTaken; round++ {
				fmt.Fprintf(out, "Round %d: near %s  far %s  distance %d\n",
					round, result.NearPath[round], result.FarPath[round], result.Distance(round))
			}

			fmt.Fprintln(out)
			if result.Met {
				idx := result.MeetingIndex()
				fmt.Fprintf(out, "The walkers met at point %s %s after %d rounds.\n",
					grid.PointLabel(idx), result.FinalNear(), result.StepsTaken)
			} else {
				fmt.Fprintf(out, "The walkers did not meet: near ended at %s, far at %s.\n",
					result.FinalNear(), result.FinalFar())
			}

			if plot {
				fmt.Fprintln(out)
				fmt.Fprint(out, visualization.RenderTrial(result))
			}

			return nil
		},
	}

	cmd.Flags().Int("n", cfg.Simulation.GridSize, "Grid size (points per side)")
	cmd.Flags().Uint64("seed", 0, "Seed for the coin-flip generator (0 = random)")
	cmd.Flags().Bool("plot", false, "Draw the grid with both walker paths")

	return cmd
}
