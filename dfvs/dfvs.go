package dfvs

import (
	"sort"
	"time"

	"github.com/xosmig/breaking-the-cycle/driver"
	"github.com/xosmig/breaking-the-cycle/graph"
	"github.com/xosmig/breaking-the-cycle/heuristic"
	"github.com/xosmig/breaking-the-cycle/reduce"
)

// Status reports whether SolveExact certified optimality before its
// deadline.
type Status int

const (
	// OPTIMAL means the returned S is a provably minimum feedback vertex
	// set.
	OPTIMAL Status = iota
	// TIMEOUT means the deadline passed before every search node could
	// be resolved; the returned S is still a valid feedback vertex set,
	// just not provably minimum.
	TIMEOUT
)

func (s Status) String() string {
	switch s {
	case OPTIMAL:
		return "OPTIMAL"
	case TIMEOUT:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// SolveExact computes a minimum (or, if the deadline is too tight, best
// available) feedback vertex set for g: global FULL reduction first,
// then the parallel per-SCC exact search via driver.Driver. g is left
// unmodified.
//
// Status is determined by whether the deadline had already passed by
// the time the search returned. This is a coarse signal rather than a
// per-component ledger — driver.Driver.Solve's signature returns only
// the merged vertex set, per spec.md 4.G, not a per-worker optimality
// flag — but it is conservative in the direction that matters: if the
// deadline had not yet passed, every dispatched bnb.SolveSCC call must
// have returned having either exhausted its subtree or been cut off by
// the same deadline, and the latter case would itself mean "now" is at
// or past the deadline, so the check cannot report OPTIMAL for a search
// that actually timed out.
func SolveExact(g *graph.Graph, deadline time.Time) (s []int, status Status) {
	cp := g.Checkpoint()
	defer g.Rollback(cp)

	rootRes := reduce.NewEngine(g).ReduceToFixpoint(reduce.FULL)

	d := &driver.Driver{}
	fromSCCs := d.Solve(g, deadline)

	result := append(append([]int(nil), rootRes.ForcedIntoS...), fromSCCs...)
	sort.Ints(result)

	if time.Now().After(deadline) {
		return result, TIMEOUT
	}
	return result, OPTIMAL
}

// SolveHeuristic computes a feasible feedback vertex set quickly: global
// FULL reduction, then heuristic.Solve on the residual. g is left
// unmodified. Unlike SolveExact there is no optimality question — the
// heuristic path never claims one.
func SolveHeuristic(g *graph.Graph, deadline time.Time) []int {
	return SolveHeuristicUntil(g, deadline, nil)
}

// SolveHeuristicUntil behaves like SolveHeuristic, but closing cancel
// stops the search early — the best S found so far is still returned,
// per spec.md §1's SIGTERM-triggers-graceful-handoff requirement.
func SolveHeuristicUntil(g *graph.Graph, deadline time.Time, cancel <-chan struct{}) []int {
	cp := g.Checkpoint()
	defer g.Rollback(cp)

	rootRes := reduce.NewEngine(g).ReduceToFixpoint(reduce.FULL)

	budget := time.Until(deadline)
	s := heuristic.SolveUntil(g, budget, cancel)

	result := append(append([]int(nil), rootRes.ForcedIntoS...), s...)
	sort.Ints(result)
	return result
}
