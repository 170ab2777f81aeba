// File: engine.go
// Role: SolveSCC and the Engine driving it. Grounded on tsp/bb.go's
// bbEngine: dedicated struct, recursive dfs-shaped search method,
// deadline check at recursion entry, incumbent bookkeeping via a
// dedicated bestLen/best pair rather than returning values up the stack.
package bnb

import (
	"sort"
	"time"

	"github.com/xosmig/breaking-the-cycle/bound"
	"github.com/xosmig/breaking-the-cycle/graph"
	"github.com/xosmig/breaking-the-cycle/reduce"
)

// Engine owns the exact search over one *graph.Graph. It is not
// goroutine-safe and is meant to be used once, from SolveSCC.
type Engine struct {
	g        *graph.Graph
	deadline time.Time

	// bestLen is the length of the best solution known, seeded from the
	// caller's ub. best holds the concrete vertex set only once the
	// search itself has found something strictly better than ub — the
	// caller already has a concrete witness of length ub (typically
	// heuristic.Solve's output) and does not need it echoed back.
	bestLen int
	best    []int

	optimal bool
}

// SolveSCC runs exact branch-and-bound on g (restricted to its live
// vertices, which is expected to be exactly one nontrivial SCC), seeded
// with an existing feasible bound ub (e.g. len(heuristic.Solve(g, ...))).
// It returns a strictly smaller feasible S if the search finds one
// before deadline, or nil if it does not — in which case the caller's
// own ub witness remains the best available, optimal only tells it
// whether that witness is now proven optimal (true) or whether the
// search ran out of time without resolving the question (false).
func SolveSCC(g *graph.Graph, ub int, deadline time.Time) (S []int, optimal bool) {
	e := &Engine{g: g, deadline: deadline, bestLen: ub, optimal: true}

	root := g.Checkpoint()
	defer g.Rollback(root)

	rootReduce := reduce.NewEngine(g)
	rootRes := rootReduce.ReduceToFixpoint(reduce.FULL)

	e.search(append([]int(nil), rootRes.ForcedIntoS...), nil)

	return e.best, e.optimal
}

func (e *Engine) deadlineOK() bool {
	if time.Now().After(e.deadline) {
		e.optimal = false
		return false
	}
	return true
}

// search explores the subtree in which partialS vertices are already
// committed into S (via prior reductions or branch-IN choices) and the
// vertices in excluded are committed to staying out of S for this
// subtree (prior branch-OUT choices). g's live subgraph is the residual
// after all of those commitments.
func (e *Engine) search(partialS []int, excluded map[int]struct{}) {
	if !e.deadlineOK() {
		return
	}

	if e.g.IsAcyclic() {
		if len(partialS) < e.bestLen {
			e.bestLen = len(partialS)
			e.best = append([]int(nil), partialS...)
			sort.Ints(e.best)
		}
		return
	}

	lb := len(partialS) + bound.Bound(e.g)
	if lb >= e.bestLen {
		return
	}

	v, partner := e.pickBranchVertex(excluded)
	if v == -1 {
		// Every live vertex has been excluded yet a cycle remains: a chain
		// of Branch-OUT choices excluded every vertex of that cycle
		// without any rule forcing one of them. No completion of this
		// subtree keeps all of them out of S, so it is abandoned.
		return
	}

	if partner != -1 {
		e.branchTwoCycle(partialS, excluded, v, partner)
		return
	}
	e.branchInOut(partialS, excluded, v)
}
