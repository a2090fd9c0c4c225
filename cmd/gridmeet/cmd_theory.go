package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/gridmeet/internal/analysis"
)

func newTheoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Print theoretical meeting probabilities without simulating",
		Long: `Print the meeting probability for each grid size from 1 to --max-n:
the exact closed form C(2n-2,n-1)/4^(n-1) alongside the naive uniform
estimate 1/n. The two agree only for n <= 2.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			maxN, _ := cmd.Flags().GetInt("max-n")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if maxN < 1 {
				return fmt.Errorf("max-n must be >= 1, got %d", maxN)
			}

			type row struct {
				N       int     `json:"n"`
				Exact   float64 `json:"exact_probability"`
				Uniform float64 `json:"uniform_model"`
			}

			rows := make([]row, 0, maxN)
			for n := 1; n <= maxN; n++ {
				rows = append(rows, row{
					N:       n,
					Exact:   analysis.ExactMeetingProbability(n),
					Uniform: analysis.TheoreticalProbability(n),
				})
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %12s %12s\n", "n", "Exact", "1/n")
			for _, r := range rows {
				fmt.Fprintf(out, "%-4d %12.6f %12.6f\n", r.N, r.Exact, r.Uniform)
			}

			return nil
		},
	}

	cmd.Flags().Int("max-n", 10, "Largest grid size to tabulate")

	return cmd
}
