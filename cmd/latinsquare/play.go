package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latinsquare/game"
	"github.com/katalvlaran/latinsquare/gridfile"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Fill a puzzle yourself, one cell at a time",
	Long: `Reads the puzzle from <file> and opens an interactive board.

Commands inside the game (positions and values are 1-based):
  i,j=v   enter value v at row i, column j
  i,j=0   clear the cell at row i, column j
  0,0=0   save the board and end the game

The board is saved next to the input file as out-<file>.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// runPlay loads the puzzle, hands it to the terminal UI and reports where
// the board was saved.
func runPlay(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return &exitError{code: exitInputError,
			msg: "play needs a terminal; stdout is not one"}
	}

	board, err := gridfile.Load(path)
	if err != nil {
		return &exitError{code: exitInputError, msg: err.Error()}
	}
	out := gridfile.OutputPath(path)
	slog.Debug("starting game", "path", path, "size", board.Size(), "output", out)

	model, err := tea.NewProgram(game.New(board, game.Config{OutputPath: out})).Run()
	if err != nil {
		return &exitError{code: exitInputError, msg: fmt.Sprintf("game: %v", err)}
	}

	if m, ok := model.(game.Model); ok && m.Won() {
		slog.Debug("board completed", "output", out)
	}

	return nil
}
