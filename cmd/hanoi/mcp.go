package main

import (
	"log"
	"os"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/aretw0/hanoi/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the solver as an MCP Server over stdio, exposing the
solve_hanoi, count_moves and verify_moves tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := cli.NewApp(cfg, logger, cfg.Server.MaxDisks)
		if err != nil {
			return err
		}
		defer app.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting Hanoi MCP Server (Stdio)...")
		return mcp.NewServer(app.Solver, hanoi.Version, logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
