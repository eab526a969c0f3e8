package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gitrdm/csolve/internal/render"
	"github.com/gitrdm/csolve/pkg/problem"
)

func newProblemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problem <file.yaml>",
		Short: "Solve a declarative YAML problem definition",
		Long: "Reads a YAML file declaring variables over symbolic values with\n" +
			"not_equal edges and all_different groups, and prints one\n" +
			"satisfying assignment.",
		Args: cobra.ExactArgs(1),
		RunE: runProblem,
	}
}

func runProblem(cmd *cobra.Command, args []string) error {
	def, err := problem.LoadFile(args[0])
	if err != nil {
		return err
	}

	inst, err := def.Build()
	if err != nil {
		return err
	}
	slog.Debug("compiled problem", "name", inst.Name(),
		"variables", inst.Store().VariableCount(), "arcs", len(inst.Store().Arcs()))

	solution, monitor, err := solve(cmd.Context(), inst.Store())
	if err != nil {
		return err
	}

	labeled := make(map[string]string, len(solution))
	for name, value := range solution {
		labeled[name] = inst.Label(value)
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Labels(labeled))
	if flagStats {
		fmt.Fprint(cmd.OutOrStdout(), render.Stats(monitor.Stats()))
	}
	return nil
}
