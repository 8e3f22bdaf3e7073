package grid_test

import (
	"testing"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromCells builds a Snapshot or fails the test.
func mustFromCells(t *testing.T, cells [][]int) *grid.Snapshot {
	t.Helper()
	s, err := grid.NewFromCells(cells)
	require.NoError(t, err)

	return s
}

func TestNew_Validation(t *testing.T) {
	t.Run("rejects size below MinSize", func(t *testing.T) {
		_, err := grid.New(0)
		require.ErrorIs(t, err, grid.ErrBadSize)
	})

	t.Run("builds an all-empty board", func(t *testing.T) {
		s, err := grid.New(3)
		require.NoError(t, err)

		assert.Equal(t, 3, s.Size())
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				assert.Equal(t, grid.Empty, s.Value(r, c))
			}
		}
		r, c := s.Cursor()
		assert.Zero(t, r)
		assert.Zero(t, c)
		for v := 1; v <= 3; v++ {
			assert.True(t, s.Untried(v))
		}
	})
}

func TestNewFromCells_Validation(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		want  error
	}{
		{"empty input", [][]int{}, grid.ErrBadSize},
		{"ragged rows", [][]int{{1, 0}, {0}}, grid.ErrNonSquare},
		{"value above N", [][]int{{3, 0}, {0, 0}}, grid.ErrCellRange},
		{"clue below -N", [][]int{{-3, 0}, {0, 0}}, grid.ErrCellRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewFromCells(tc.cells)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromCells_CopiesInput(t *testing.T) {
	cells := [][]int{{-1, 0}, {0, 1}}
	s := mustFromCells(t, cells)

	cells[0][1] = 2
	assert.Equal(t, grid.Empty, s.Value(0, 1), "snapshot must not alias caller cells")
}

func TestDuplicateChecks(t *testing.T) {
	s := mustFromCells(t, [][]int{
		{-1, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})

	assert.True(t, s.DuplicateInRow(0, 1), "clue counts by absolute value")
	assert.False(t, s.DuplicateInRow(0, 2))
	assert.True(t, s.DuplicateInRow(1, 2))

	assert.True(t, s.DuplicateInCol(0, 1))
	assert.True(t, s.DuplicateInCol(1, 2))
	assert.False(t, s.DuplicateInCol(2, 1))
}

func TestNextEmpty_CursorScan(t *testing.T) {
	s := mustFromCells(t, [][]int{
		{-1, 0},
		{0, 0},
	})

	r, c, ok := s.NextEmpty()
	require.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 1, c)

	s.Place(r, c, 2)
	r, c, ok = s.NextEmpty()
	require.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0, c, "column index must wrap to 0 past the cursor row")

	s.Place(1, 0, 2)
	s.Place(1, 1, 1)
	_, _, ok = s.NextEmpty()
	assert.False(t, ok)
}

func TestNextEmpty_ScansOnlyFromCursor(t *testing.T) {
	s := mustFromCells(t, [][]int{
		{0, -1},
		{0, -2},
	})

	// (0,0) stays empty but sits behind the cursor after this placement.
	s.Place(1, 0, 2)
	_, _, ok := s.NextEmpty()
	assert.False(t, ok, "the scan never looks behind the cursor")
}

func TestPlace_MovesCursorAndResetsMask(t *testing.T) {
	s, err := grid.New(3)
	require.NoError(t, err)

	s.Strike(1)
	s.Strike(3)
	require.False(t, s.Untried(1))
	require.True(t, s.Untried(2))
	require.False(t, s.Untried(3))

	s.Place(1, 2, 1)
	assert.Equal(t, 1, s.Value(1, 2))
	r, c := s.Cursor()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	for v := 1; v <= 3; v++ {
		assert.True(t, s.Untried(v), "Place must reset the candidate mask")
	}
}

func TestClone_Independence(t *testing.T) {
	orig := mustFromCells(t, [][]int{{-1, 0}, {0, 0}})
	orig.Strike(2)

	cp := orig.Clone()
	assert.Equal(t, orig.Cells(), cp.Cells())
	assert.False(t, cp.Untried(2), "mask state travels with the copy")

	cp.Place(0, 1, 2)
	cp.Strike(1)

	assert.Equal(t, grid.Empty, orig.Value(0, 1))
	assert.True(t, orig.Untried(1))
	r, c := orig.Cursor()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

func TestComplete(t *testing.T) {
	s := mustFromCells(t, [][]int{{-1, 2}, {2, 0}})
	assert.False(t, s.Complete())

	require.NoError(t, s.Set(1, 1, 1))
	assert.True(t, s.Complete(), "clues and assignments both count as filled")
}

func TestSet_Validation(t *testing.T) {
	base := [][]int{
		{-1, 0, 0},
		{0, 0, 3},
		{0, 0, 0},
	}

	cases := []struct {
		name            string
		row, col, value int
		want            error
	}{
		{"row out of bounds", 3, 0, 1, grid.ErrOutOfBounds},
		{"negative column", 0, -1, 1, grid.ErrOutOfBounds},
		{"fixed clue", 0, 0, 2, grid.ErrFixedCell},
		{"value above size", 1, 0, 4, grid.ErrValueRange},
		{"negative value", 1, 0, -1, grid.ErrValueRange},
		{"row duplicate", 0, 2, 1, grid.ErrRowDuplicate},
		{"column duplicate", 0, 2, 3, grid.ErrColDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustFromCells(t, base)
			require.ErrorIs(t, s.Set(tc.row, tc.col, tc.value), tc.want)
		})
	}
}

func TestSet_ApplyAndClear(t *testing.T) {
	s := mustFromCells(t, [][]int{{-1, 0}, {0, 0}})

	require.NoError(t, s.Set(0, 1, 2))
	assert.Equal(t, 2, s.Value(0, 1))

	t.Run("same value again collides with itself", func(t *testing.T) {
		require.ErrorIs(t, s.Set(0, 1, 2), grid.ErrRowDuplicate)
	})

	t.Run("clear then reassign", func(t *testing.T) {
		require.NoError(t, s.Set(0, 1, grid.Empty))
		assert.Equal(t, grid.Empty, s.Value(0, 1))
		require.NoError(t, s.Set(0, 1, 2))
	})

	t.Run("leaves solver bookkeeping alone", func(t *testing.T) {
		s.Strike(1)
		require.NoError(t, s.Set(1, 0, 2))
		assert.False(t, s.Untried(1))
		r, c := s.Cursor()
		assert.Zero(t, r)
		assert.Zero(t, c)
	})
}

func TestString_Render(t *testing.T) {
	s := mustFromCells(t, [][]int{
		{-2, 1},
		{0, -2},
	})

	want := "" +
		"+-----+-----+\n" +
		"| (2) |  1  |\n" +
		"+-----+-----+\n" +
		"|  0  | (2) |\n" +
		"+-----+-----+\n"
	assert.Equal(t, want, s.String())
}
