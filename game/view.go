package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/latinsquare/grid"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleClue   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleEmpty  = lipgloss.NewStyle().Faint(true)
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleWin    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleHelp   = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return m.finalView()
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Latin Square") + "\n\n")
	b.WriteString(m.renderBoard())
	if m.status != "" {
		b.WriteString(styleStatus.Render(m.status) + "\n")
	}
	b.WriteString(m.helpView())
	b.WriteString(m.input.View() + "\n")

	return b.String()
}

// renderBoard draws the bordered grid: clues in parentheses, player values
// plain, empty cells as dots.
func (m Model) renderBoard() string {
	n := m.board.Size()
	border := "+" + strings.Repeat("-----+", n)

	var b strings.Builder
	for r := 0; r < n; r++ {
		b.WriteString(border + "\n")
		for c := 0; c < n; c++ {
			b.WriteString("|")
			switch v := m.board.Value(r, c); {
			case v < 0:
				b.WriteString(styleClue.Render(fmt.Sprintf(" (%d) ", -v)))
			case v == grid.Empty:
				b.WriteString(styleEmpty.Render("  .  "))
			default:
				b.WriteString(styleFilled.Render(fmt.Sprintf("  %d  ", v)))
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border + "\n")

	return b.String()
}

// helpView lists the command grammar, sized to the current board.
func (m Model) helpView() string {
	n := m.board.Size()

	return styleHelp.Render(fmt.Sprintf(
		"i,j=v  enter v at position (i,j)\n"+
			"i,j=0  clear cell (i,j)\n"+
			"0,0=0  save and end the game\n"+
			"positions and values run 1..%d; esc quits without saving", n)) + "\n"
}

// finalView is shown once the session ends, echoing the console original's
// two farewells plus the save outcome.
func (m Model) finalView() string {
	var b strings.Builder
	b.WriteString(m.renderBoard())
	switch {
	case m.won:
		b.WriteString(styleWin.Render("Good Job :) You solved the Latin square!") + "\n")
	case m.saved || m.saveErr != nil:
		b.WriteString("Unlucky :( Maybe next time.\n")
	default:
		b.WriteString("Ended without saving.\n")
	}
	if m.saved {
		b.WriteString(fmt.Sprintf("Saved to %s\n", m.cfg.OutputPath))
	}
	if m.saveErr != nil {
		b.WriteString(fmt.Sprintf("Save failed: %v\n", m.saveErr))
	}

	return b.String()
}
