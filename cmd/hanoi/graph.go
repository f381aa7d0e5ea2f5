package main

import (
	"fmt"

	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the recursion tree visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the recursive call tree: one box per
subproblem and one circle per emitted move. Limited to small towers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if step, _ := cmd.Flags().GetUint64("highlight"); step > 0 {
			overlay = &graph.GraphOverlay{DoneThrough: step - 1, Current: step}
		}

		output, err := graph.GenerateMermaid(cfg.Puzzle, overlay)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Uint64("highlight", 0, "Mark moves before this step as done and this step as current")
}
