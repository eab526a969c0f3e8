// Package csp provides constraint solving infrastructure.
// This file defines the Store abstraction for declaratively building
// constraint satisfaction problems: variables, their initial domains,
// and the directed pairwise compatibility tables consulted during
// propagation.
package csp

import "fmt"

// Arc is a directed reference to a constraint between an ordered
// variable pair. The arc (From, To) means "check the domain of From
// against the domain of To using the (From, To) compatibility table".
// Arcs are the entries of the propagation worklist.
type Arc struct {
	From int
	To   int
}

// Store holds a constraint satisfaction problem:
//   - Variables: named decision variables with finite initial domains
//   - Constraints: directed permitted-value-pair tables per ordered pair
//
// Stores are constructed incrementally by adding variables and
// constraints; malformed input (duplicate names, unknown variables,
// empty domains) fails at build time. Once search begins the store is
// read-only: only domain snapshots derived from it are mutated.
//
// Construction and solving are strictly sequential; a Store is not
// safe for concurrent use.
type Store struct {
	// names holds variable names in registration order; the position
	// of a name is the variable's ID.
	names []string

	// index maps variable names to IDs for fast lookup.
	index map[string]int

	// domains holds the initial domain of each variable by ID.
	domains []Domain

	// tables[i][j] is the support table for the ordered pair (i, j).
	// Constraints are stored per direction; registering (i, j) says
	// nothing about (j, i).
	tables map[int]map[int]*supportTable

	// arcs lists every (i, j) with a registered table, in registration
	// order, so worklist seeding is deterministic.
	arcs []Arc

	// incoming[v] lists every arc (i, v), i.e. the arcs that must be
	// re-checked after v's domain shrinks.
	incoming map[int][]Arc
}

// supportTable is the materialized permitted-pairs relation for one
// ordered variable pair (i, j). rows[v-1] holds the set of j-values
// compatible with i taking value v. Rows for values outside i's
// initial domain stay empty.
type supportTable struct {
	rows []Domain
}

// NewStore creates an empty constraint store.
func NewStore() *Store {
	return &Store{
		index:    make(map[string]int),
		tables:   make(map[int]map[int]*supportTable),
		incoming: make(map[int][]Arc),
	}
}

// AddVariable registers a variable with its initial candidate values.
// Values are positive integers; duplicates in the value list are
// collapsed. Returns an error for a duplicate name, an empty value
// list, or a non-positive value.
func (s *Store) AddVariable(name string, values []int) error {
	if _, exists := s.index[name]; exists {
		return fmt.Errorf("variable %q already registered", name)
	}
	if len(values) == 0 {
		return fmt.Errorf("variable %q has empty initial domain", name)
	}

	maxValue := 0
	for _, v := range values {
		if v < 1 {
			return fmt.Errorf("variable %q has non-positive value %d", name, v)
		}
		if v > maxValue {
			maxValue = v
		}
	}

	id := len(s.names)
	s.names = append(s.names, name)
	s.index[name] = id
	s.domains = append(s.domains, NewBitSetDomainFromValues(maxValue, values))
	return nil
}

// AddConstraint restricts the compatibility table for the ordered pair
// (i, j) to value pairs satisfying pred. The constraint applies one
// way only; callers needing a symmetric constraint must also add
// (j, i).
//
// The first constraint on a pair materializes the full cross product
// of the two initial domains and filters it; further constraints on
// the same pair filter the existing table, so they compose by
// intersection (logical AND), never by replacement.
func (s *Store) AddConstraint(i, j string, pred func(vi, vj int) bool) error {
	from, ok := s.index[i]
	if !ok {
		return fmt.Errorf("constraint references unknown variable %q", i)
	}
	to, ok := s.index[j]
	if !ok {
		return fmt.Errorf("constraint references unknown variable %q", j)
	}
	if from == to {
		return fmt.Errorf("constraint relates variable %q to itself", i)
	}

	table := s.tables[from][to]
	if table == nil {
		table = s.newTable(from, to)
		if s.tables[from] == nil {
			s.tables[from] = make(map[int]*supportTable)
		}
		s.tables[from][to] = table

		arc := Arc{From: from, To: to}
		s.arcs = append(s.arcs, arc)
		s.incoming[to] = append(s.incoming[to], arc)
	}

	s.domains[from].IterateValues(func(vi int) {
		row := table.rows[vi-1]
		for _, vj := range row.Values() {
			if !pred(vi, vj) {
				row.Remove(vj)
			}
		}
	})
	return nil
}

// newTable builds the unconstrained cross-product table for (from, to):
// every value of from's initial domain supports every value of to's.
func (s *Store) newTable(from, to int) *supportTable {
	rows := make([]Domain, s.domains[from].MaxValue())
	empty := NewBitSetDomainFromValues(s.domains[to].MaxValue(), nil)
	for i := range rows {
		rows[i] = empty
	}
	s.domains[from].IterateValues(func(v int) {
		rows[v-1] = s.domains[to].Clone()
	})
	return &supportTable{rows: rows}
}

// AddAllDifferent adds an inequality constraint, in both directions,
// between every ordered pair of distinct variables in the group.
func (s *Store) AddAllDifferent(names ...string) error {
	for _, i := range names {
		for _, j := range names {
			if i == j {
				continue
			}
			if err := s.AddConstraint(i, j, func(vi, vj int) bool {
				return vi != vj
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Arcs returns every (i, j) pair with a registered constraint, in
// registration order. Used to seed full propagation at every search
// node. The returned slice must not be modified.
func (s *Store) Arcs() []Arc {
	return s.arcs
}

// NeighboringArcs returns every arc (i, v) directed at the variable
// with the given ID -- the arcs to re-check after v's domain shrinks.
// The returned slice must not be modified.
func (s *Store) NeighboringArcs(v int) []Arc {
	return s.incoming[v]
}

// support returns the set of j-values compatible with variable i
// taking value v. Returns nil if no table is registered for (i, j).
func (s *Store) support(i, j, v int) Domain {
	table := s.tables[i][j]
	if table == nil || v < 1 || v > len(table.rows) {
		return nil
	}
	return table.rows[v-1]
}

// VariableCount returns the number of registered variables.
func (s *Store) VariableCount() int {
	return len(s.names)
}

// ID returns the ID of the named variable.
func (s *Store) ID(name string) (int, bool) {
	id, ok := s.index[name]
	return id, ok
}

// Name returns the name of the variable with the given ID.
// Panics if the ID is out of range.
func (s *Store) Name(id int) string {
	return s.names[id]
}

// InitialDomain returns the initial domain registered for a variable.
// The returned domain must not be modified; snapshots clone it.
func (s *Store) InitialDomain(id int) Domain {
	return s.domains[id]
}

// Snapshot returns a fresh assignment holding an owned copy of every
// variable's initial domain.
func (s *Store) Snapshot() *Assignment {
	domains := make([]Domain, len(s.domains))
	for i, d := range s.domains {
		domains[i] = d.Clone()
	}
	return &Assignment{domains: domains}
}

// Validate checks that the store is well-formed and ready for solving.
// AddVariable and AddConstraint already fail fast, so this is a final
// guard against stores assembled by hand.
func (s *Store) Validate() error {
	for id, d := range s.domains {
		if d.Count() == 0 {
			return fmt.Errorf("variable %q has empty domain", s.names[id])
		}
	}
	return nil
}

// String returns a human-readable summary of the store.
func (s *Store) String() string {
	return fmt.Sprintf("Store{variables: %d, arcs: %d}", len(s.names), len(s.arcs))
}
