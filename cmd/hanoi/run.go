package main

import (
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the moves that solve the puzzle",
	Long: `Streams every move to stdout. The default text output is one line per move:

  move disk from  X  to  Z

Use --output json for NDJSON records or --output rich for a terminal view.`,
	Args: cobra.NoArgs,
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

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		numbered, _ := cmd.Flags().GetBool("numbered")
		board, _ := cmd.Flags().GetBool("board")
		_, err = cli.Execute(ctx, app, cli.RunOptions{
			Puzzle:   cfg.Puzzle,
			Output:   cfg.Output,
			Numbered: numbered,
			Board:    board,
			Stdout:   cmd.OutOrStdout(),
		})
		return cli.HandleExecutionError(err, ctx.Signal(), cmd.ErrOrStderr())
	},
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output: text, json, rich or auto")
	cmd.Flags().Bool("numbered", false, "Prefix text lines with the step number")
	cmd.Flags().Bool("board", true, "Draw the final board in rich output")
}

func init() {
	rootCmd.AddCommand(runCmd)
	addOutputFlags(runCmd)

	// 'run' is the default when no command is provided.
	addOutputFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runCmd.RunE
}
