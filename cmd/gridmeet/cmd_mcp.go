package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/gridmeet/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Run the MCP server over stdio",
		Long: `Start a Model Context Protocol server exposing gridmeet's tools
(gridmeet_trial, gridmeet_analyze, gridmeet_theory) over stdio.

The server runs until the client disconnects or the process receives an
interrupt signal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcp.NewServer(&mcp.Config{
				Name:    "gridmeet",
				Version: version,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}
}
