package csp_test

import (
	"context"
	"fmt"
	"log"

	"github.com/gitrdm/csolve/pkg/csp"
)

// Color a three-node path graph with two colors: adjacent variables
// must differ, so the ends are forced to share a color.
func ExampleSolver_Solve() {
	store := csp.NewStore()
	for _, name := range []string{"A", "B", "C"} {
		if err := store.AddVariable(name, []int{1, 2}); err != nil {
			log.Fatal(err)
		}
	}

	notEqual := func(a, b int) bool { return a != b }
	for _, pair := range [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "B"}} {
		if err := store.AddConstraint(pair[0], pair[1], notEqual); err != nil {
			log.Fatal(err)
		}
	}

	solver := csp.NewSolver(store)
	solution, err := solver.Solve(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("A=%d B=%d C=%d\n", solution["A"], solution["B"], solution["C"])
	// Output: A=1 B=2 C=1
}
