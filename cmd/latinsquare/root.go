package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool // --verbose: slog debug diagnostics on stderr

// rootCmd is the bare `latinsquare` entry point; all work lives in the
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "latinsquare",
	Short: "Solve and play Latin-square completion puzzles",
	Long: `latinsquare works on plain-text puzzle files: a size header N,
then N×N whitespace-separated integers. Zero marks an empty cell,
a negative value marks an immutable clue, a positive value an
ordinary (changeable) assignment.

  latinsquare solve puzzle.txt   complete the puzzle by backtracking
  latinsquare play puzzle.txt    fill the puzzle yourself, interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"debug diagnostics on stderr")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}
}
