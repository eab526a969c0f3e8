// Package problem loads declarative CSP definitions from YAML and
// compiles them into constraint stores. Values in a definition are
// symbolic labels (colors, names); the package maps them onto the
// integer value universe of pkg/csp and maps solutions back.
//
// A definition looks like:
//
//	name: australia
//	values: [red, green, blue]
//	variables:
//	  T: [red]          # optional per-variable domain restriction
//	not_equal:
//	  - [SA, WA]        # inequality edge, constrained both ways
//	all_different:
//	  - [WA, NT, SA]    # pairwise inequality over a group
package problem

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/csolve/pkg/csp"
)

// Definition is the YAML shape of a problem file.
type Definition struct {
	// Name identifies the problem in logs and output.
	Name string `yaml:"name"`

	// Values is the shared value universe, as symbolic labels.
	Values []string `yaml:"values"`

	// Variables maps variable names to their candidate labels. An
	// empty or missing list means the full value universe.
	Variables map[string][]string `yaml:"variables"`

	// NotEqual lists inequality edges. Each entry is a pair of
	// variable names; the constraint is registered in both directions.
	NotEqual [][]string `yaml:"not_equal"`

	// AllDifferent lists variable groups under a pairwise inequality
	// constraint.
	AllDifferent [][]string `yaml:"all_different"`
}

// Load reads a Definition from YAML.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading problem: %w", err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing problem: %w", err)
	}
	return &def, nil
}

// LoadFile reads a Definition from a YAML file.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Instance is a compiled problem: the constraint store plus the
// label mapping needed to interpret solutions.
type Instance struct {
	def    *Definition
	store  *csp.Store
	labels []string       // value -> label, 1-indexed via labels[v-1]
	values map[string]int // label -> value
}

// Build compiles the definition into a solvable instance. Unknown
// labels, missing values, and malformed constraints fail here, before
// any search runs.
func (d *Definition) Build() (*Instance, error) {
	if len(d.Values) == 0 {
		return nil, fmt.Errorf("problem %q declares no values", d.Name)
	}

	values := make(map[string]int, len(d.Values))
	for i, label := range d.Values {
		if _, dup := values[label]; dup {
			return nil, fmt.Errorf("problem %q declares value %q twice", d.Name, label)
		}
		values[label] = i + 1
	}

	inst := &Instance{
		def:    d,
		store:  csp.NewStore(),
		labels: d.Values,
		values: values,
	}

	// Register variables in sorted name order so solver tie-breaking
	// does not depend on YAML map iteration.
	names := make([]string, 0, len(d.Variables))
	for name := range d.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		domain, err := inst.domainValues(name, d.Variables[name])
		if err != nil {
			return nil, err
		}
		if err := inst.store.AddVariable(name, domain); err != nil {
			return nil, fmt.Errorf("problem %q: %w", d.Name, err)
		}
	}

	for _, pair := range d.NotEqual {
		if len(pair) != 2 {
			return nil, fmt.Errorf("problem %q: not_equal entry %v is not a pair", d.Name, pair)
		}
		for _, edge := range [][2]string{{pair[0], pair[1]}, {pair[1], pair[0]}} {
			if err := inst.store.AddConstraint(edge[0], edge[1], func(a, b int) bool {
				return a != b
			}); err != nil {
				return nil, fmt.Errorf("problem %q: %w", d.Name, err)
			}
		}
	}

	for _, group := range d.AllDifferent {
		if err := inst.store.AddAllDifferent(group...); err != nil {
			return nil, fmt.Errorf("problem %q: %w", d.Name, err)
		}
	}

	return inst, nil
}

// domainValues maps a variable's labels to values; an empty list means
// the full universe.
func (inst *Instance) domainValues(name string, labels []string) ([]int, error) {
	if len(labels) == 0 {
		domain := make([]int, len(inst.labels))
		for i := range domain {
			domain[i] = i + 1
		}
		return domain, nil
	}
	domain := make([]int, 0, len(labels))
	for _, label := range labels {
		v, ok := inst.values[label]
		if !ok {
			return nil, fmt.Errorf("variable %q uses undeclared value %q", name, label)
		}
		domain = append(domain, v)
	}
	return domain, nil
}

// Store returns the compiled constraint store.
func (inst *Instance) Store() *csp.Store {
	return inst.store
}

// Name returns the problem name from the definition.
func (inst *Instance) Name() string {
	return inst.def.Name
}

// VariableNames returns the variable names in registration order.
func (inst *Instance) VariableNames() []string {
	names := make([]string, inst.store.VariableCount())
	for i := range names {
		names[i] = inst.store.Name(i)
	}
	return names
}

// Label translates a solver value back to its symbolic label.
func (inst *Instance) Label(value int) string {
	if value < 1 || value > len(inst.labels) {
		return fmt.Sprintf("value(%d)", value)
	}
	return inst.labels[value-1]
}

// Solve runs the given solver (or a default one if nil) and returns
// the solution with values translated back to labels.
func (inst *Instance) Solve(ctx context.Context, solver *csp.Solver) (map[string]string, error) {
	if solver == nil {
		solver = csp.NewSolver(inst.store)
	}
	solution, err := solver.Solve(ctx)
	if err != nil {
		return nil, err
	}
	labeled := make(map[string]string, len(solution))
	for name, value := range solution {
		labeled[name] = inst.Label(value)
	}
	return labeled, nil
}
