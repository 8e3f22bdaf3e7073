package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/katalvlaran/latinsquare/gridfile"
)

// Status-line feedback for the two command outcomes that carry no cell
// context.
const (
	msgWrongFormat = "Wrong format of command"
	msgInserted    = "Value inserted!"
)

// Config configures a play session.
type Config struct {
	// OutputPath is where the board is written on save and on win.
	OutputPath string
}

// Model is the bubbletea model of one play session. It owns the board
// passed to New and mutates it through the validated Set path only.
type Model struct {
	cfg   Config
	board *grid.Snapshot
	input textinput.Model

	status  string
	won     bool
	saved   bool
	saveErr error

	quitting bool
}

// New returns a Model playing board under cfg. The model takes ownership
// of board.
func New(board *grid.Snapshot, cfg Config) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "i,j=v"
	in.CharLimit = 16
	in.Focus()

	return Model{
		cfg:   cfg,
		board: board,
		input: in,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true

			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit consumes one typed command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		return m, nil
	}

	row, col, val, ok := parseCommand(raw)
	if !ok {
		m.status = msgWrongFormat

		return m, nil
	}

	// The save-and-exit command is checked on the raw 1-based triple.
	if row == 0 && col == 0 && val == 0 {
		return m.finish()
	}

	if err := m.board.Set(row-1, col-1, val); err != nil {
		m.status = feedback(err, row, col, m.board.Size())

		return m, nil
	}
	m.status = msgInserted

	if m.board.Complete() {
		m.won = true

		return m.finish()
	}

	return m, nil
}

// finish saves the board and ends the session.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.saveErr = gridfile.Save(m.cfg.OutputPath, m.board)
	m.saved = m.saveErr == nil
	m.quitting = true

	return m, tea.Quit
}

// Board exposes the current board, for the caller that resumes ownership
// after the session ends.
func (m Model) Board() *grid.Snapshot { return m.board }

// Won reports whether the session ended with a completed board.
func (m Model) Won() bool { return m.won }

// parseCommand parses the 1-based "i,j=v" grammar. Whitespace around the
// three numbers is tolerated; anything else is a format error.
func parseCommand(raw string) (row, col, val int, ok bool) {
	lhs, rhs, found := strings.Cut(raw, "=")
	if !found {
		return 0, 0, 0, false
	}
	first, second, found := strings.Cut(lhs, ",")
	if !found {
		return 0, 0, 0, false
	}

	var err error
	if row, err = strconv.Atoi(strings.TrimSpace(first)); err != nil {
		return 0, 0, 0, false
	}
	if col, err = strconv.Atoi(strings.TrimSpace(second)); err != nil {
		return 0, 0, 0, false
	}
	if val, err = strconv.Atoi(strings.TrimSpace(rhs)); err != nil {
		return 0, 0, 0, false
	}

	return row, col, val, true
}

// feedback turns a rejected Set into the status line the player sees; row
// and col are the 1-based coordinates as typed.
func feedback(err error, row, col, size int) string {
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		return "Error! Index out of bounds"
	case errors.Is(err, grid.ErrFixedCell):
		return fmt.Sprintf("The value at %d,%d cannot change. Pick a cell without parentheses.", row, col)
	case errors.Is(err, grid.ErrValueRange):
		return fmt.Sprintf("Illegal value. Enter a value between [1..%d].", size)
	case errors.Is(err, grid.ErrRowDuplicate):
		return fmt.Sprintf("The value already exists in the row. Try another value between [1..%d].", size)
	case errors.Is(err, grid.ErrColDuplicate):
		return fmt.Sprintf("The value already exists in the column. Try another value between [1..%d].", size)
	default:
		return err.Error()
	}
}
