package heuristic

import (
	"sort"
	"time"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// Solve computes a feasible DFVS for g's current live subgraph within
// budget, per spec.md 4.D: a greedy construction followed by local
// search. g is left exactly as it was found — both phases operate under
// Checkpoint/Rollback — so Solve is safe to call repeatedly against the
// same Graph, e.g. from driver to seed a component's incumbent.
//
// Solve always returns a valid DFVS; per spec.md 7 "the core guarantees
// a valid S is always available at any checkpoint", there is no error
// return and no status. If the time budget (or cancel) fires
// mid-construction, constructivePhase finishes driving the residual to
// acyclic anyway — rather than handing back a set that still leaves a
// cycle — before this function returns. A short budget only costs
// solution quality, never feasibility.
func Solve(g *graph.Graph, budget time.Duration) []int {
	return SolveUntil(g, budget, nil)
}

// SolveUntil behaves exactly like Solve, except that closing cancel
// stops both phases as soon as their current vertex-level step
// completes, even if budget has not yet elapsed; a nil cancel is never
// checked, so only budget applies (this is what Solve passes). This
// is what lets a caller honor an external signal (SIGTERM) without
// threading a context.Context through every rule and search loop in the
// package — callers that don't need early cancellation should keep
// using Solve.
func SolveUntil(g *graph.Graph, budget time.Duration, cancel <-chan struct{}) []int {
	deadline := time.Now().Add(budget)

	root := g.Checkpoint()
	s := constructivePhase(g, deadline, cancel)
	g.Rollback(root)

	s = localSearch(g, s, deadline, cancel)

	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

// stillRunning reports whether a loop bounded by deadline and cancel
// should keep going: cancel, if non-nil, is checked first so a signal
// wins a race against a deadline that is about to expire anyway.
func stillRunning(deadline time.Time, cancel <-chan struct{}) bool {
	if cancel != nil {
		select {
		case <-cancel:
			return false
		default:
		}
	}
	return time.Now().Before(deadline)
}
