// Package csp provides arc-consistency propagation.
// This file implements the AC-3 engine: a FIFO worklist of arcs is
// drained by revising each arc in turn, re-enqueueing the neighbors of
// any variable whose domain shrank, until either a fixpoint is reached
// or some domain empties (contradiction).
package csp

// propagate runs AC-3 over the assignment, seeded with the given
// worklist. Returns false as soon as any domain becomes empty;
// returns true once the worklist drains, at which point the
// assignment is arc-consistent (individual domains may still hold
// more than one candidate).
//
// Worklist order affects only performance, never the fixpoint: AC-3
// is confluent. An arc already pending is not enqueued a second time,
// which bounds the worklist without changing the result.
func (s *Solver) propagate(a *Assignment, initial []Arc) bool {
	if s.monitor != nil {
		s.monitor.RecordPropagation()
	}

	queue := make([]Arc, len(initial))
	copy(queue, initial)

	pending := make(map[Arc]bool, len(queue))
	for _, arc := range queue {
		pending[arc] = true
	}

	for head := 0; head < len(queue); head++ {
		arc := queue[head]
		pending[arc] = false

		if !s.revise(a, arc.From, arc.To) {
			continue
		}
		if a.Domain(arc.From).Count() == 0 {
			return false
		}

		// The domain of arc.From shrank: every arc directed at it must
		// be re-checked, except the one pointing straight back at the
		// neighbor just used (an immediate no-op).
		for _, back := range s.store.NeighboringArcs(arc.From) {
			if back.From == arc.To || pending[back] {
				continue
			}
			pending[back] = true
			queue = append(queue, back)
		}
	}
	return true
}

// revise removes from domain(i) every value lacking a supporting value
// in domain(j) under the (i, j) compatibility table. Reports whether
// at least one value was removed.
func (s *Solver) revise(a *Assignment, i, j int) bool {
	if s.monitor != nil {
		s.monitor.RecordRevise()
	}

	di := a.Domain(i)
	dj := a.Domain(j)

	revised := false
	for _, v := range di.Values() {
		support := s.store.support(i, j, v)
		if support != nil && support.Intersects(dj) {
			continue
		}
		di.Remove(v)
		revised = true
		if s.monitor != nil {
			s.monitor.RecordPrune()
		}
	}
	return revised
}

// Propagate establishes arc-consistency on the assignment using the
// full arc set. Returns false if a contradiction (empty domain) was
// derived. Exposed for callers that want pre-search pruning or to
// verify consistency of an existing assignment; Solve performs this
// root propagation itself.
func (s *Solver) Propagate(a *Assignment) bool {
	return s.propagate(a, s.store.Arcs())
}
