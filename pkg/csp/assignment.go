package csp

// assignment.go: domain snapshots owned by individual search-tree nodes.

// Assignment maps every variable to its current domain at one point in
// the search. Exactly one assignment is live per search-tree node;
// children receive independent copies via Clone, so a mutation in one
// branch is never observable in a parent or sibling. This copy-on-
// branch discipline is the central correctness invariant of the
// solver.
type Assignment struct {
	domains []Domain
}

// Domain returns the current domain of the variable with the given ID.
// The domain is owned by this assignment; the propagation engine
// shrinks it in place.
func (a *Assignment) Domain(id int) Domain {
	return a.domains[id]
}

// Clone returns a structurally independent copy of the assignment:
// every domain container is deep-copied. Required before every value
// trial so sibling branches never alias state.
func (a *Assignment) Clone() *Assignment {
	domains := make([]Domain, len(a.domains))
	for i, d := range a.domains {
		domains[i] = d.Clone()
	}
	return &Assignment{domains: domains}
}

// assign restricts the variable's domain to the single trial value.
func (a *Assignment) assign(id, value int) {
	a.domains[id] = NewBitSetDomainFromValues(a.domains[id].MaxValue(), []int{value})
}

// Complete returns true if every variable's domain has exactly one
// value, i.e. the snapshot is a full consistent solution.
func (a *Assignment) Complete() bool {
	for _, d := range a.domains {
		if !d.IsSingleton() {
			return false
		}
	}
	return true
}

// VariableCount returns the number of variables in the snapshot.
func (a *Assignment) VariableCount() int {
	return len(a.domains)
}
