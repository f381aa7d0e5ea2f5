package main

import (
	"fmt"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the solver as a JSON API over HTTP, with the OpenAPI document at
/openapi.yaml and Prometheus metrics at /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}

		app, err := cli.NewApp(cfg, logger, cfg.Server.MaxDisks)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		fmt.Fprintf(cmd.OutOrStdout(), "Starting Hanoi Server on :%s\n", cfg.Server.Port)
		if err := cli.Serve(ctx, app, ":"+cfg.Server.Port); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Hanoi Server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
