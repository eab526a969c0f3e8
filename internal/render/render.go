// Package render formats solver output for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitrdm/csolve/pkg/csp"
	"github.com/gitrdm/csolve/pkg/sudoku"
)

var (
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	givenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// swatches maps common color labels to terminal colors for coloring
// problems; unknown labels render unstyled.
var swatches = map[string]lipgloss.Color{
	"red":    lipgloss.Color("196"),
	"green":  lipgloss.Color("40"),
	"blue":   lipgloss.Color("33"),
	"yellow": lipgloss.Color("220"),
	"orange": lipgloss.Color("208"),
	"purple": lipgloss.Color("129"),
}

// Board renders a solved board, highlighting the cells that were empty
// in the original puzzle.
func Board(original, solved *sudoku.Board) string {
	var sb strings.Builder
	for row := 0; row < solved.Size; row++ {
		var parts []string
		for col := 0; col < solved.Size; col++ {
			cell := fmt.Sprintf("%d", solved.Cell(row, col))
			if original != nil && original.Cell(row, col) == 0 {
				cell = filledStyle.Render(cell)
			} else {
				cell = givenStyle.Render(cell)
			}
			parts = append(parts, cell)
			if col != solved.Size-1 && (col+1)%solved.BoxSize == 0 {
				parts = append(parts, frameStyle.Render("|"))
			}
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString("\n")

		if row != solved.Size-1 && (row+1)%solved.BoxSize == 0 {
			width := 2*solved.Size - 1 + 2*(solved.BoxSize-1)
			rule := []byte(strings.Repeat("-", width))
			// Put '+' where the vertical separators sit.
			for b := 1; b < solved.BoxSize; b++ {
				rule[b*(2*solved.BoxSize+2)-2] = '+'
			}
			sb.WriteString(frameStyle.Render(string(rule)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Labels renders a labeled solution (e.g. a map coloring) as aligned
// "name: label" lines in variable-name order.
func Labels(solution map[string]string) string {
	names := make([]string, 0, len(solution))
	width := 0
	for name := range solution {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		label := solution[name]
		rendered := label
		if color, ok := swatches[label]; ok {
			rendered = lipgloss.NewStyle().Foreground(color).Render(label)
		}
		fmt.Fprintf(&sb, "%s %s\n", nameStyle.Render(fmt.Sprintf("%-*s:", width, name)), rendered)
	}
	return sb.String()
}

// Stats renders solver statistics dimmed, so they read as a footer.
func Stats(stats csp.SolverStats) string {
	return statsStyle.Render(stats.String()) + "\n"
}
