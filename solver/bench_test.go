package solver_test

import (
	"testing"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/katalvlaran/latinsquare/solver"
)

// BenchmarkSolve_EmptyBoard fills a blank 4×4 board: sixteen pushes, no
// backtracking.
func BenchmarkSolve_EmptyBoard(b *testing.B) {
	empty, err := grid.New(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solver.Solve(empty); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_LastRow completes the final row of a 9×9 cyclic square.
// Every cell is forced, so the run measures per-step frame copying at the
// largest supported size.
func BenchmarkSolve_LastRow(b *testing.B) {
	cells := make([][]int, 9)
	for i := range cells {
		cells[i] = make([]int, 9)
		for j := range cells[i] {
			if i < 8 {
				cells[i][j] = -(((i + j) % 9) + 1)
			}
		}
	}
	initial, err := grid.NewFromCells(cells)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solver.Solve(initial); err != nil {
			b.Fatal(err)
		}
	}
}
