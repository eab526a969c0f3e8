// Command csolve solves constraint satisfaction problems from the
// command line: Sudoku grids from text files and declarative YAML
// problem definitions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagStats    bool
	flagVerbose  bool
	flagTimeout  time.Duration
	flagMaxNodes int
)

func main() {
	root := &cobra.Command{
		Use:   "csolve",
		Short: "Finite-domain constraint solver (AC-3 + backtracking)",
		Long: "csolve builds a constraint satisfaction problem from a file,\n" +
			"prunes it with arc-consistency propagation, and searches for a\n" +
			"complete assignment by backtracking.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	root.PersistentFlags().BoolVar(&flagStats, "stats", false, "print solver statistics")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "abort search after this duration (0 = no limit)")
	root.PersistentFlags().IntVar(&flagMaxNodes, "max-nodes", 0, "abort search after this many nodes (0 = no limit)")

	root.AddCommand(newSudokuCmd())
	root.AddCommand(newProblemCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "csolve: %v\n", err)
		os.Exit(1)
	}
}
