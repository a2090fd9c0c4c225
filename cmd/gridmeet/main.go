package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/gridmeet/internal/config"
)

var version = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gridmeet",
		Short: "Monte Carlo simulator for two random walkers on a grid",
		Long: `gridmeet simulates two walkers released from opposite corners of an
n x n grid. Each round both walkers flip a fair coin to pick an axis and
step toward the other corner. After n-1 rounds they either share a cell
on the anti-diagonal or they don't.

Run single narrated trials, aggregate thousands of them, and compare the
observed meeting frequency against the theoretical probability.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for machine consumption)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTrialCmd(cfg),
		newAnalyzeCmd(cfg),
		newTheoryCmd(),
		newMCPServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "gridmeet version %s\n", version)
			}
		},
	}
}
