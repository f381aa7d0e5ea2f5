package main

import (
	"log/slog"
	"os"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Hanoi prints the moves that solve the Towers of Hanoi",
	Long: `Hanoi generates the minimal move sequence that transfers a tower of disks
from a source peg to a destination peg, one disk at a time, never placing a
larger disk on a smaller one. Without a subcommand it behaves like 'hanoi run'.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.IntP("disks", "n", 0, "Number of disks")
	flags.String("from", "", "Source peg label")
	flags.String("to", "", "Destination peg label")
	flags.String("via", "", "Auxiliary peg label")
	flags.String("strategy", "", "Generation strategy: recursive or iterative")
}

// loadConfig merges defaults, the config file and explicit flags, then builds the logger.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, nil, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("disks") {
		cfg.Puzzle.Disks, _ = flags.GetInt("disks")
	}
	for name, peg := range map[string]*domain.Peg{
		"from": &cfg.Puzzle.Source,
		"to":   &cfg.Puzzle.Destination,
		"via":  &cfg.Puzzle.Auxiliary,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*peg = domain.Peg(v)
		}
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level), nil
}
