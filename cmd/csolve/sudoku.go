package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/csolve/internal/render"
	"github.com/gitrdm/csolve/pkg/csp"
	"github.com/gitrdm/csolve/pkg/sudoku"
)

func newSudokuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <grid-file>",
		Short: "Solve a Sudoku board read from a text grid",
		Long: "Reads a board with one row per line and one digit per cell,\n" +
			"'0' or '.' marking empty cells, and prints the solved grid.",
		Args: cobra.ExactArgs(1),
		RunE: runSudoku,
	}
}

func runSudoku(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	board, err := sudoku.Parse(f)
	if err != nil {
		return err
	}

	store, err := board.Store()
	if err != nil {
		return err
	}
	slog.Debug("compiled board", "size", board.Size, "arcs", len(store.Arcs()))

	solution, monitor, err := solve(cmd.Context(), store)
	if err != nil {
		return err
	}

	solved, err := sudoku.FromSolution(board.Size, solution)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Board(board, solved))
	if flagStats {
		fmt.Fprint(cmd.OutOrStdout(), render.Stats(monitor.Stats()))
	}
	return nil
}

// solve runs a solver with the global timeout/limit flags applied and
// a monitor attached.
func solve(ctx context.Context, store *csp.Store) (csp.Solution, *csp.Monitor, error) {
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	solver := csp.NewSolverWithConfig(store, &csp.SolverConfig{MaxNodes: flagMaxNodes})
	monitor := csp.NewMonitor()
	solver.SetMonitor(monitor)

	solution, err := solver.Solve(ctx)
	if err != nil {
		return nil, nil, err
	}
	stats := monitor.Stats()
	slog.Debug("solved", "nodes", stats.NodesExplored, "backtracks", stats.Backtracks, "time", stats.SearchTime)
	return solution, monitor, nil
}
