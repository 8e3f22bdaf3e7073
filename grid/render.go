package grid

import (
	"fmt"
	"strings"
)

// String renders the board as a bordered ASCII block, one line of cells per
// row: assigned values plain, fixed clues in parentheses, empty cells as 0.
//
//	+-----+-----+
//	| (2) |  1  |
//	+-----+-----+
//	|  0  | (2) |
//	+-----+-----+
//
// Cell width is tuned for single-digit values, which covers the whole
// domain accepted by the file layer.
func (s *Snapshot) String() string {
	var b strings.Builder

	border := "+" + strings.Repeat("-----+", s.size) + "\n"
	for r := 0; r < s.size; r++ {
		b.WriteString(border)
		for c := 0; c < s.size; c++ {
			if v := s.cells[r][c]; v < 0 {
				fmt.Fprintf(&b, "| (%d) ", -v)
			} else {
				fmt.Fprintf(&b, "|  %d  ", v)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}
