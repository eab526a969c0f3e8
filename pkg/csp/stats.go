package csp

// stats.go: monitoring and statistics for the solver.

import (
	"fmt"
	"sync"
	"time"
)

// SolverStats holds counters describing one solving run. All counters
// are plain external-facing statistics; they never influence search.
type SolverStats struct {
	NodesExplored  int           // Search-tree nodes visited
	Backtracks     int           // Nodes that exhausted every candidate value
	SolutionsFound int           // 0 or 1 for a single Solve call
	MaxDepth       int           // Deepest search-tree node reached
	SearchTime     time.Duration // Wall time from monitor creation to FinishSearch

	Propagations int // propagate calls (one per trial assignment, plus the root)
	ReviseCalls  int // Individual arc revisions
	ValuesPruned int // Domain values removed by revision
}

// Monitor collects SolverStats during solving. Attach one to a Solver
// via SetMonitor before calling Solve; read the results with Stats.
//
// The solver is single-threaded, but the mutex keeps snapshots taken
// from other goroutines (metrics scrapes, progress displays) coherent.
type Monitor struct {
	mu        sync.Mutex
	stats     SolverStats
	startTime time.Time
}

// NewMonitor creates a monitor; the search timer starts immediately.
func NewMonitor() *Monitor {
	return &Monitor{startTime: time.Now()}
}

// Stats returns a copy of the current statistics.
func (m *Monitor) Stats() SolverStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// RecordNode records visiting a search node.
func (m *Monitor) RecordNode() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.NodesExplored++
}

// RecordBacktrack records a node failing after exhausting its values.
func (m *Monitor) RecordBacktrack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Backtracks++
}

// RecordSolution records finding a complete consistent assignment.
func (m *Monitor) RecordSolution() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SolutionsFound++
}

// RecordDepth records the current search depth.
func (m *Monitor) RecordDepth(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}
}

// RecordPropagation records one run of the propagation engine.
func (m *Monitor) RecordPropagation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Propagations++
}

// RecordRevise records one arc revision.
func (m *Monitor) RecordRevise() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.ReviseCalls++
}

// RecordPrune records one domain value removed by revision.
func (m *Monitor) RecordPrune() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.ValuesPruned++
}

// FinishSearch stops the search timer.
func (m *Monitor) FinishSearch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SearchTime = time.Since(m.startTime)
}

// String returns a formatted summary of the statistics.
func (s SolverStats) String() string {
	return fmt.Sprintf(
		"Solver Statistics:\n"+
			"  Search: %d nodes, %d backtracks, %d solutions, max depth %d, %v\n"+
			"  Propagation: %d runs, %d revisions, %d values pruned",
		s.NodesExplored, s.Backtracks, s.SolutionsFound, s.MaxDepth, s.SearchTime,
		s.Propagations, s.ReviseCalls, s.ValuesPruned,
	)
}
