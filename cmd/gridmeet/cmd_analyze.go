package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvandessel/gridmeet/internal/analysis"
	"github.com/nvandessel/gridmeet/internal/config"
	"github.com/nvandessel/gridmeet/internal/export"
	"github.com/nvandessel/gridmeet/internal/grid"
	"github.com/nvandessel/gridmeet/internal/logging"
)

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run many trials and summarize the meeting distribution",
		Long: `Run a batch of independent trials and report the meeting frequency,
the distribution of meeting points along the anti-diagonal, and the
theoretical probabilities for comparison.

Trials run in parallel by default; use --workers 1 with --seed for a
fully reproducible run.

Examples:
  gridmeet analyze --n 5 --trials 100000
  gridmeet analyze --n 5 --trials 100000 --export dist.csv
  gridmeet analyze --n 5 --trials 100000 --workers 1 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			trials, _ := cmd.Flags().GetInt("trials")
			workers, _ := cmd.Flags().GetInt("workers")
			seed, _ := cmd.Flags().GetUint64("seed")
			exportPath, _ := cmd.Flags().GetString("export")
			jsonOut, _ := cmd.Flags().GetBool("json")

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			logger.Debug("starting analysis", "n", n, "trials", trials, "workers", workers, "seed", seed)

			// Interactive sweet spots, not hard limits.
			if n > 0 && (n < 3 || n > 10) {
				logger.Warn("grid size outside the usual 3..10 range", "n", n)
			}
			if trials > 0 && (trials < 100 || trials > 100000) {
				logger.Warn("trial count outside the usual 100..100000 range", "trials", trials)
			}

			start := time.Now()
			result, err := analysis.Run(cmd.Context(), analysis.Params{
				N:       n,
				Trials:  trials,
				Workers: workers,
				Seed:    seed,
			})
			if err != nil {
				return err
			}
			logger.Debug("analysis complete", "trials", result.TrialCount, "meetings", result.MeetingCount, "elapsed", time.Since(start))

			if exportPath != "" {
				if err := export.WriteFile(exportPath, result); err != nil {
					return err
				}
			}

			exact := analysis.ExactMeetingProbability(n)
			uniform := analysis.TheoreticalProbability(n)

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"n":                     result.N,
					"trials":                result.TrialCount,
					"meetings":              result.MeetingCount,
					"empirical_probability": result.EmpiricalProbability(),
					"exact_probability":     exact,
					"uniform_model":         uniform,
					"per_point_counts":      result.PerPointCounts,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ran %d trials on a %dx%d grid.\n\n", result.TrialCount, n, n)

			fmt.Fprintf(out, "%-6s %-8s %10s %12s %12s\n", "Point", "Cell", "Count", "Observed", "Expected")
			for i, p := range grid.MeetingPoints(n) {
				fmt.Fprintf(out, "%-6s %-8s %10d %11.2f%% %11.2f%%\n",
					grid.PointLabel(i), p.String(),
					result.PerPointCounts[i],
					100*result.PointProbability(i),
					100*analysis.TheoreticalPointProbability(n, i))
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Meetings:              %d of %d\n", result.MeetingCount, result.TrialCount)
			fmt.Fprintf(out, "Empirical probability: %.4f\n", result.EmpiricalProbability())
			fmt.Fprintf(out, "Exact probability:     %.4f\n", exact)
			fmt.Fprintf(out, "Uniform model (1/n):   %.4f\n", uniform)

			if exportPath != "" {
				fmt.Fprintf(out, "\nExported distribution to %s\n", exportPath)
			}

			return nil
		},
	}

	cmd.Flags().Int("n", cfg.Simulation.GridSize, "Grid size (points per side)")
	cmd.Flags().Int("trials", cfg.Simulation.Trials, "Number of trials to run")
	cmd.Flags().Int("workers", cfg.Simulation.Workers, "Parallel workers (0 = one per CPU)")
	cmd.Flags().Uint64("seed", cfg.Simulation.Seed, "Base seed for reproducible runs (0 = random)")
	cmd.Flags().String("export", "", "Export the distribution table (.csv or .arrow)")

	return cmd
}
