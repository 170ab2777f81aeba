// File: worker.go
// Role: the per-SCC pipeline a single worker runs: induce the subgraph,
// seed an incumbent with heuristic.Solve, try to improve or prove it
// optimal with bnb.SolveSCC, and translate the winner's vertex ids back
// to the caller's graph.
package driver

import (
	"time"

	"github.com/xosmig/breaking-the-cycle/bnb"
	"github.com/xosmig/breaking-the-cycle/graph"
	"github.com/xosmig/breaking-the-cycle/heuristic"
)

// heuristicBudgetFraction caps the constructive+local-search phase at a
// tenth of whatever time remains for this SCC, leaving the rest for
// exact search.
const heuristicBudgetFraction = 10

func solveComponent(g *graph.Graph, vertices []int, deadline time.Time) []int {
	sub, globalOf := induced(g, vertices)

	h := heuristic.Solve(sub, heuristicBudget(deadline))
	best := h

	exact, _ := bnb.SolveSCC(sub, len(h), deadline)
	if exact != nil && len(exact) < len(best) {
		best = exact
	}

	out := make([]int, len(best))
	for i, local := range best {
		out[i] = globalOf[local]
	}
	return out
}

func heuristicBudget(deadline time.Time) time.Duration {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0
	}
	return remaining / heuristicBudgetFraction
}
