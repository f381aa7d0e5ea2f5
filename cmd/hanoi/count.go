package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [disks]",
	Short: "Print how many moves the puzzle takes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid disk count %q: %w", args[0], err)
			}
			cfg.Puzzle.Disks = n
		}
		if err := cfg.Puzzle.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Puzzle.MoveCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
