// File: constructive.go
// Role: the greedy construction phase of 4.D: repeatedly remove the
// highest-scoring live vertex until the residual is acyclic.
package heuristic

import (
	"math"
	"time"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// constructivePhase greedily builds a feasible DFVS by repeatedly
// removing score(v) = degree_in(v)*degree_out(v) - penalty_for_2cycles(v),
// the highest-scoring live vertex, per spec.md 4.D. It mutates g in
// place; callers are responsible for checkpointing beforehand if the
// original graph must be preserved.
//
// Running out of budget (deadline or cancel) only ever stops the
// greedy-scoring part early; per spec.md 7 "the core guarantees a
// valid S is always available at any checkpoint", the residual is
// always driven to acyclic before this function returns, via
// finishForFeasibility, even if that means ignoring the deadline for
// however many vertices are left to remove.
func constructivePhase(g *graph.Graph, deadline time.Time, cancel <-chan struct{}) []int {
	var s []int
	for !g.IsAcyclic() {
		if !stillRunning(deadline, cancel) {
			return finishForFeasibility(g, s)
		}
		v := bestScoringVertex(g)
		if v < 0 {
			break
		}
		s = append(s, v)
		g.RemoveVertex(v)
	}
	return s
}

// finishForFeasibility keeps removing the highest-scoring live vertex,
// ignoring the deadline, until the residual is acyclic. A budget can
// only trade away search quality, never the feasibility guarantee
// itself — the remaining work here is bounded by the number of
// vertices still on a cycle, not by the search's own time budget.
func finishForFeasibility(g *graph.Graph, s []int) []int {
	for !g.IsAcyclic() {
		v := bestScoringVertex(g)
		if v < 0 {
			break
		}
		s = append(s, v)
		g.RemoveVertex(v)
	}
	return s
}

// bestScoringVertex returns the live vertex with the highest score,
// ascending id as tie-break (the first vertex encountered that strictly
// improves on the running best wins, since ids are visited in order).
func bestScoringVertex(g *graph.Graph) int {
	best := -1
	bestScore := int(math.MinInt64)
	for v := 0; v < g.N(); v++ {
		if !g.IsLive(v) {
			continue
		}
		score := g.DegreeIn(v)*g.DegreeOut(v) - twoCyclePenalty(g, v)
		if score > bestScore {
			bestScore = score
			best = v
		}
	}
	return best
}

// twoCyclePenalty counts v's anti-parallel edge pairs: neighbors w with
// both (v,w) and (w,v) live. Vertices buried in 2-cycles are cheaper to
// handle via the reduction engine's DOUBLE-EDGE/TWIN rules, so the
// constructive phase mildly deprioritizes them.
func twoCyclePenalty(g *graph.Graph, v int) int {
	count := 0
	for _, w := range g.NeighborsOut(v) {
		if g.HasEdge(w, v) {
			count++
		}
	}
	return count
}
