// Package csp provides backtracking search.
// This file implements the Solver: recursive depth-first search that
// branches on cloned assignment snapshots, interleaved with AC-3
// propagation at every node. Variable selection uses the minimum-
// remaining-values heuristic; ties break deterministically by
// registration order.
package csp

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned by Solve when no assignment satisfies
// every constraint. Internally it also signals the failure of a single
// search branch, in which case it is recovered by the parent node.
var ErrUnsatisfiable = errors.New("csp: problem is unsatisfiable")

// ErrNodeLimit is returned when the search exceeds the configured
// MaxNodes budget before finding a solution or proving
// unsatisfiability.
var ErrNodeLimit = errors.New("csp: node limit exceeded")

// Solution maps each variable name to its assigned value. A solution
// is always complete and consistent; partial results are never
// returned.
type Solution map[string]int

// Solver finds a solution to the constraint satisfaction problem held
// in a Store by recursive backtracking search with AC-3 propagation on
// every trial assignment.
//
// Control flow is strictly layered: the search calls the propagation
// engine on every trial, and the engine calls back into the store to
// look up compatibility tables and neighboring arcs. The store is
// read-only during search; each search-tree node owns an independently
// cloned Assignment, which is what makes the search safe without any
// locking.
//
// A Solver is single-threaded and not safe for concurrent use.
type Solver struct {
	store   *Store
	config  *SolverConfig
	monitor *Monitor

	// nodes counts search-tree nodes visited by the current Solve call.
	nodes int
}

// NewSolver creates a solver for the given store with the default
// configuration. The store should be fully constructed first.
func NewSolver(store *Store) *Solver {
	return NewSolverWithConfig(store, nil)
}

// NewSolverWithConfig creates a solver with a custom configuration.
// A nil config falls back to the defaults.
func NewSolverWithConfig(store *Store, config *SolverConfig) *Solver {
	if config == nil {
		config = DefaultSolverConfig()
	}
	return &Solver{
		store:  store,
		config: config,
	}
}

// SetMonitor enables statistics collection during solving.
func (s *Solver) SetMonitor(monitor *Monitor) {
	s.monitor = monitor
}

// Solve finds one complete consistent assignment, or reports that none
// exists. It first runs full propagation on an owned snapshot of the
// initial domains; this pre-search pruning can solve some instances
// outright, and a root-level contradiction proves unsatisfiability
// without any branching. Otherwise it descends into backtracking
// search.
//
// The context is checked at the top of every search node, so callers
// can bound search time with a deadline; ctx errors are returned
// as-is.
func (s *Solver) Solve(ctx context.Context) (Solution, error) {
	if err := s.store.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store: %w", err)
	}

	if s.monitor != nil {
		defer s.monitor.FinishSearch()
	}
	s.nodes = 0

	root := s.store.Snapshot()
	if !s.propagate(root, s.store.Arcs()) {
		return nil, ErrUnsatisfiable
	}

	// Propagation alone may have collapsed every domain.
	if root.Complete() {
		if s.monitor != nil {
			s.monitor.RecordSolution()
		}
		return s.solution(root), nil
	}

	result, err := s.search(ctx, root, 1)
	if err != nil {
		return nil, err
	}
	if s.monitor != nil {
		s.monitor.RecordSolution()
	}
	return s.solution(result), nil
}

// search is one node of the search tree, owning one assignment
// snapshot. It returns the first complete assignment found below this
// node, ErrUnsatisfiable if every candidate value was exhausted, or a
// context/limit error to abort the whole search.
func (s *Solver) search(ctx context.Context, a *Assignment, depth int) (*Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.nodes++
	if s.config.MaxNodes > 0 && s.nodes > s.config.MaxNodes {
		return nil, ErrNodeLimit
	}
	if s.monitor != nil {
		s.monitor.RecordNode()
		s.monitor.RecordDepth(depth)
	}

	if a.Complete() {
		return a, nil
	}

	id := s.selectVariable(a)

	for _, value := range a.Domain(id).Values() {
		child := a.Clone()
		child.assign(id, value)

		if !s.propagate(child, s.store.Arcs()) {
			// Trial value contradicted some constraint; discard the
			// clone and move on.
			continue
		}

		result, err := s.search(ctx, child, depth+1)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrUnsatisfiable) {
			return nil, err
		}
	}

	// Every candidate for the chosen variable failed; unwind.
	if s.monitor != nil {
		s.monitor.RecordBacktrack()
	}
	return nil, ErrUnsatisfiable
}

// selectVariable picks the undecided variable with the smallest
// remaining domain (minimum-remaining-values). Ties break on the
// lowest variable ID, keeping search order reproducible. Must only be
// called on incomplete assignments.
func (s *Solver) selectVariable(a *Assignment) int {
	best := -1
	bestCount := 0
	for id := 0; id < a.VariableCount(); id++ {
		count := a.Domain(id).Count()
		if count <= 1 {
			continue
		}
		if best == -1 || count < bestCount {
			best = id
			bestCount = count
		}
	}
	return best
}

// solution strips the singleton domains of a complete assignment down
// to bare values keyed by variable name.
func (s *Solver) solution(a *Assignment) Solution {
	solution := make(Solution, a.VariableCount())
	for id := 0; id < a.VariableCount(); id++ {
		solution[s.store.Name(id)] = a.Domain(id).SingletonValue()
	}
	return solution
}
