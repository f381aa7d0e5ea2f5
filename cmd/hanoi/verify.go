package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check that a move list solves the puzzle",
	Long: `Replays a move list on a board and reports the first illegal move.
Reads the file argument or stdin. Accepts the text and json outputs of 'hanoi run'
as well as a JSON array of {"from", "to"} objects.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := cli.NewApp(cfg, logger, 0)
		if err != nil {
			return err
		}
		defer app.Close()

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		n, err := cli.Verify(app, cfg.Puzzle, in)
		if err != nil {
			return fmt.Errorf("not a solution: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d moves solve %s\n", n, cfg.Puzzle)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
