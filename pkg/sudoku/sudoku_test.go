package sudoku

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/csolve/pkg/csp"
)

const easy9x9 = `
530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

const easy9x9Solved = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

func TestNew(t *testing.T) {
	board, err := New(9)
	require.NoError(t, err)
	assert.Equal(t, 9, board.Size)
	assert.Equal(t, 3, board.BoxSize)

	board, err = New(4)
	require.NoError(t, err)
	assert.Equal(t, 2, board.BoxSize)

	for _, size := range []int{0, 3, 5, 6, 8, 16} {
		_, err := New(size)
		assert.Error(t, err, "size %d", size)
	}
}

func TestParse(t *testing.T) {
	board, err := ParseString(easy9x9)
	require.NoError(t, err)
	assert.Equal(t, 9, board.Size)
	assert.Equal(t, 5, board.Cell(0, 0))
	assert.Equal(t, 0, board.Cell(0, 2))
	assert.Equal(t, 9, board.Cell(8, 8))
}

func TestParse_DotsForEmpty(t *testing.T) {
	board, err := ParseString("12..\n34..\n....\n....")
	require.NoError(t, err)
	assert.Equal(t, 4, board.Size)
	assert.Equal(t, 0, board.Cell(0, 2))
	assert.Equal(t, 3, board.Cell(1, 0))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		grid string
	}{
		{"ragged row", "123\n12\n123"},
		{"invalid char", "12x4\n3412\n2143\n4321"},
		{"digit above size", "1254\n3412\n2143\n4321"},
		{"bad size", "12\n12"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.grid)
			assert.Error(t, err)
		})
	}
}

func TestStore_VariableAndConstraintLayout(t *testing.T) {
	board, err := ParseString("12..\n34..\n....\n....")
	require.NoError(t, err)

	store, err := board.Store()
	require.NoError(t, err)
	assert.Equal(t, 16, store.VariableCount())

	// Filled cells compile to singleton domains, empty cells to the
	// full range.
	id, ok := store.ID("0-0")
	require.True(t, ok)
	assert.Equal(t, []int{1}, store.InitialDomain(id).Values())

	id, ok = store.ID("2-3")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, store.InitialDomain(id).Values())
}

func TestSolve_PropagationOnly(t *testing.T) {
	// Two blanks in the top-left box; columns force their values, so
	// root propagation solves the board without a single search node.
	board, err := ParseString("..34\n3412\n2143\n4321")
	require.NoError(t, err)

	store, err := board.Store()
	require.NoError(t, err)

	solver := csp.NewSolver(store)
	monitor := csp.NewMonitor()
	solver.SetMonitor(monitor)

	solution, err := solver.Solve(context.Background())
	require.NoError(t, err)

	solved, err := FromSolution(4, solution)
	require.NoError(t, err)
	assert.Equal(t, 1, solved.Cell(0, 0))
	assert.Equal(t, 2, solved.Cell(0, 1))

	stats := monitor.Stats()
	assert.Zero(t, stats.NodesExplored)
	assert.Zero(t, stats.Backtracks)
}

func TestSolve_Easy9x9(t *testing.T) {
	board, err := ParseString(easy9x9)
	require.NoError(t, err)

	solved, err := board.Solve(context.Background())
	require.NoError(t, err)

	want, err := ParseString(easy9x9Solved)
	require.NoError(t, err)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			assert.Equal(t, want.Cell(row, col), solved.Cell(row, col),
				"cell (%d, %d)", row, col)
		}
	}
}

func TestSolve_AlreadySolved(t *testing.T) {
	// A fully filled valid grid compiles to all-singleton domains;
	// propagation confirms consistency with zero branching.
	board, err := ParseString(easy9x9Solved)
	require.NoError(t, err)

	store, err := board.Store()
	require.NoError(t, err)

	solver := csp.NewSolver(store)
	monitor := csp.NewMonitor()
	solver.SetMonitor(monitor)

	solution, err := solver.Solve(context.Background())
	require.NoError(t, err)

	solved, err := FromSolution(9, solution)
	require.NoError(t, err)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			assert.Equal(t, board.Cell(row, col), solved.Cell(row, col),
				"cell (%d, %d)", row, col)
		}
	}

	stats := monitor.Stats()
	assert.Zero(t, stats.NodesExplored)
	assert.Zero(t, stats.Backtracks)
}

func TestSolve_GivensSurvive(t *testing.T) {
	board, err := ParseString(easy9x9)
	require.NoError(t, err)

	solved, err := board.Solve(context.Background())
	require.NoError(t, err)

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if given := board.Cell(row, col); given != 0 {
				assert.Equal(t, given, solved.Cell(row, col),
					"given at (%d, %d)", row, col)
			}
		}
	}
}

func TestSolve_Unsatisfiable(t *testing.T) {
	// Two identical values in one row.
	board, err := ParseString("11..\n....\n....\n....")
	require.NoError(t, err)

	_, err = board.Solve(context.Background())
	assert.ErrorIs(t, err, csp.ErrUnsatisfiable)
}

func TestFromSolution_MissingCell(t *testing.T) {
	_, err := FromSolution(4, csp.Solution{"0-0": 1})
	assert.ErrorContains(t, err, "missing cell")
}

func TestString(t *testing.T) {
	board, err := ParseString(easy9x9Solved)
	require.NoError(t, err)

	rendered := board.String()
	assert.Contains(t, rendered, "5 3 4 | 6 7 8 | 9 1 2")
	assert.Contains(t, rendered, "------+-------+------")
}

func TestString_EmptyCells(t *testing.T) {
	board, err := New(4)
	require.NoError(t, err)
	board.SetCell(0, 0, 1)

	rendered := board.String()
	lines := strings.Split(rendered, "\n")
	assert.Equal(t, "1 . | . .", lines[0])
	assert.Equal(t, "----+----", lines[2])
}
