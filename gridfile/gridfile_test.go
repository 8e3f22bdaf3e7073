package gridfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/katalvlaran/latinsquare/gridfile"
	"github.com/katalvlaran/latinsquare/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", gridfile.ErrBadHeader},
		{"non-integer size", "two\n", gridfile.ErrBadHeader},
		{"zero size", "0\n", gridfile.ErrBadHeader},
		{"negative size", "-3\n", gridfile.ErrBadHeader},
		{"size above limit", "10\n", gridfile.ErrSizeLimit},
		{"cell above range", "2\n3 0\n0 0\n", gridfile.ErrCellRange},
		{"clue below range", "2\n-3 0\n0 0\n", gridfile.ErrCellRange},
		{"missing cells", "2\n1 0 0\n", gridfile.ErrTruncated},
		{"non-integer cell", "2\n1 x\n0 0\n", gridfile.ErrTruncated},
		{"trailing values", "2\n1 0\n0 0\n7\n", gridfile.ErrExtraValues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridfile.Read(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_WhitespaceAgnostic(t *testing.T) {
	oneLine, err := gridfile.Read(strings.NewReader("2 -1 0 0 2"))
	require.NoError(t, err)

	multi, err := gridfile.Read(strings.NewReader("2\n-1 0\n0 2\n"))
	require.NoError(t, err)

	assert.Equal(t, multi.Cells(), oneLine.Cells())
}

func TestWrite_CanonicalLayout(t *testing.T) {
	s, err := grid.NewFromCells([][]int{{-1, 2}, {0, -2}})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, gridfile.Write(&b, s))
	assert.Equal(t, "2\n-1 2\n0 -2\n", b.String())
}

func TestSaveLoad_RoundTripThroughSolve(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "puzzle.txt")
	require.NoError(t, os.WriteFile(in, []byte("3\n-1 0 0\n0 0 0\n0 0 -2\n"), 0o644))

	puzzle, err := gridfile.Load(in)
	require.NoError(t, err)

	res, err := solver.Solve(puzzle)
	require.NoError(t, err)
	require.Equal(t, solver.StatusSolved, res.Status)

	out := gridfile.OutputPath(in)
	require.NoError(t, gridfile.Save(out, res.Solution))

	loaded, err := gridfile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, res.Solution.Cells(), loaded.Cells(),
		"clue signs must survive the save/load cycle")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "out-puzzle.txt", gridfile.OutputPath("puzzle.txt"))
	assert.Equal(t,
		filepath.Join("boards", "out-p1.txt"),
		gridfile.OutputPath(filepath.Join("boards", "p1.txt")),
		"the prefix lands on the base name, not the directory")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := gridfile.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
