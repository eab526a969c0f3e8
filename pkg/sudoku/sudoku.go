// Package sudoku reads Sudoku boards from text grids, compiles them
// into constraint stores, and renders solved boards. It is a pure
// construction/presentation layer: the solving itself happens in
// pkg/csp.
//
// Boards are square with square boxes: the classic 9x9 grid with 3x3
// boxes, or the reduced 4x4 grid with 2x2 boxes used in tests.
package sudoku

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gitrdm/csolve/pkg/csp"
)

// Board is a Sudoku grid. Cell values are 1..Size; 0 marks an empty
// cell.
type Board struct {
	Size    int // Side length (4 or 9)
	BoxSize int // Side length of one box (2 or 3)

	cells [][]int
}

// New creates an empty board of the given side length. The side
// length must be a perfect square no larger than 9, so each cell can
// be written as a single digit.
func New(size int) (*Board, error) {
	box := int(math.Sqrt(float64(size)))
	if size < 4 || size > 9 || box*box != size {
		return nil, fmt.Errorf("board size %d is not a perfect square in [4, 9]", size)
	}
	cells := make([][]int, size)
	for i := range cells {
		cells[i] = make([]int, size)
	}
	return &Board{Size: size, BoxSize: box, cells: cells}, nil
}

// Parse reads a board from a text grid: one line per row, one digit
// per cell, '0' or '.' for empty cells. Blank lines are skipped. The
// side length is taken from the number of rows.
func Parse(r io.Reader) (*Board, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}

	board, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != board.Size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(line), board.Size)
		}
		for c, ch := range line {
			switch {
			case ch == '.' || ch == '0':
				board.cells[r][c] = 0
			case ch >= '1' && ch <= rune('0'+board.Size):
				board.cells[r][c] = int(ch - '0')
			default:
				return nil, fmt.Errorf("row %d col %d: invalid cell %q", r, c, ch)
			}
		}
	}
	return board, nil
}

// ParseString reads a board from an in-memory grid.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// Cell returns the value at (row, col), 0 if empty.
func (b *Board) Cell(row, col int) int {
	return b.cells[row][col]
}

// SetCell writes a value at (row, col).
func (b *Board) SetCell(row, col, value int) {
	b.cells[row][col] = value
}

// cellName is the variable name for a cell, "row-col" with 0-based
// indices.
func cellName(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// Store compiles the board into a constraint store: one variable per
// cell (filled cells get a singleton domain, empty cells the full
// 1..Size range) and all-different constraints over every row, column,
// and box.
func (b *Board) Store() (*csp.Store, error) {
	store := csp.NewStore()

	full := make([]int, b.Size)
	for i := range full {
		full[i] = i + 1
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			values := full
			if v := b.cells[row][col]; v != 0 {
				values = []int{v}
			}
			if err := store.AddVariable(cellName(row, col), values); err != nil {
				return nil, err
			}
		}
	}

	for row := 0; row < b.Size; row++ {
		group := make([]string, b.Size)
		for col := 0; col < b.Size; col++ {
			group[col] = cellName(row, col)
		}
		if err := store.AddAllDifferent(group...); err != nil {
			return nil, err
		}
	}
	for col := 0; col < b.Size; col++ {
		group := make([]string, b.Size)
		for row := 0; row < b.Size; row++ {
			group[row] = cellName(row, col)
		}
		if err := store.AddAllDifferent(group...); err != nil {
			return nil, err
		}
	}
	for boxRow := 0; boxRow < b.BoxSize; boxRow++ {
		for boxCol := 0; boxCol < b.BoxSize; boxCol++ {
			var group []string
			for row := boxRow * b.BoxSize; row < (boxRow+1)*b.BoxSize; row++ {
				for col := boxCol * b.BoxSize; col < (boxCol+1)*b.BoxSize; col++ {
					group = append(group, cellName(row, col))
				}
			}
			if err := store.AddAllDifferent(group...); err != nil {
				return nil, err
			}
		}
	}

	return store, nil
}

// FromSolution rebuilds a solved board of the given size from a solver
// solution.
func FromSolution(size int, solution csp.Solution) (*Board, error) {
	board, err := New(size)
	if err != nil {
		return nil, err
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			value, ok := solution[cellName(row, col)]
			if !ok {
				return nil, fmt.Errorf("solution is missing cell %s", cellName(row, col))
			}
			board.cells[row][col] = value
		}
	}
	return board, nil
}

// Solve compiles the board and runs the solver with the default
// configuration, returning the solved board.
func (b *Board) Solve(ctx context.Context) (*Board, error) {
	store, err := b.Store()
	if err != nil {
		return nil, err
	}
	solution, err := csp.NewSolver(store).Solve(ctx)
	if err != nil {
		return nil, err
	}
	return FromSolution(b.Size, solution)
}

// String renders the board with box separators, in the style
//
//	5 3 4 | 6 7 8 | 9 1 2
//	------+-------+------
//
// Empty cells render as '.'.
func (b *Board) String() string {
	var sb strings.Builder

	var rowLine string
	for row := 0; row < b.Size; row++ {
		var parts []string
		for col := 0; col < b.Size; col++ {
			cell := "."
			if v := b.cells[row][col]; v != 0 {
				cell = fmt.Sprintf("%d", v)
			}
			parts = append(parts, cell)
			if col != b.Size-1 && (col+1)%b.BoxSize == 0 {
				parts = append(parts, "|")
			}
		}
		rowLine = strings.Join(parts, " ")
		sb.WriteString(rowLine)
		sb.WriteString("\n")

		if row != b.Size-1 && (row+1)%b.BoxSize == 0 {
			sb.WriteString(boxRule(rowLine))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// boxRule builds a horizontal separator matching a rendered row,
// turning '|' into '+' and everything else into '-'.
func boxRule(rowLine string) string {
	rule := make([]byte, len(rowLine))
	for i := range rule {
		if rowLine[i] == '|' {
			rule[i] = '+'
		} else {
			rule[i] = '-'
		}
	}
	return string(rule)
}
