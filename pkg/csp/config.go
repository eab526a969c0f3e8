package csp

// SolverConfig holds solver parameters. The zero value is a fully
// unrestricted solver.
type SolverConfig struct {
	// MaxNodes bounds the number of search-tree nodes visited.
	// Zero means unlimited. The limit is checked at the top of each
	// node, so it bounds search time without changing any semantics
	// below the cutoff.
	MaxNodes int
}

// DefaultSolverConfig returns the default configuration: unbounded
// search.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{}
}
