// File: localsearch.go
// Role: the local-search phase of 4.D: remove-one-add-zero and swap-two
// moves on a time budget. Feasibility of a candidate S is checked by
// temporarily removing it from g (via Checkpoint/Rollback) and asking
// whether the residual is acyclic — O(V+E) per trial, grounded on
// lvlath/dfs's topological-order approach to feasibility (dfs/topological.go)
// generalized from "compute the order" to "does an order exist".
package heuristic

import (
	"time"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// localSearch repeatedly tries to shrink s without losing feasibility,
// alternating remove-one-add-zero and swap-two moves until neither
// improves s or the deadline passes.
func localSearch(g *graph.Graph, s []int, deadline time.Time, cancel <-chan struct{}) []int {
	for stillRunning(deadline, cancel) {
		if next, ok := tryRemoveOne(g, s, deadline, cancel); ok {
			s = next
			continue
		}
		if next, ok := trySwapTwo(g, s, deadline, cancel); ok {
			s = next
			continue
		}
		break
	}
	return s
}

// feasibleWithout reports whether g minus the vertices in without is
// acyclic, restoring g exactly before returning.
func feasibleWithout(g *graph.Graph, without []int) bool {
	cp := g.Checkpoint()
	defer g.Rollback(cp)
	for _, v := range without {
		if g.IsLive(v) {
			g.RemoveVertex(v)
		}
	}
	return g.IsAcyclic()
}

// tryRemoveOne looks for a single s[i] that can be dropped for free
// (remove-one-add-zero): if g minus the rest of s is still acyclic, s[i]
// was never load-bearing.
func tryRemoveOne(g *graph.Graph, s []int, deadline time.Time, cancel <-chan struct{}) ([]int, bool) {
	for i := range s {
		if !stillRunning(deadline, cancel) {
			return nil, false
		}
		without := withoutIndex(s, i)
		if feasibleWithout(g, without) {
			return without, true
		}
	}
	return nil, false
}

// trySwapTwo looks for a pair s[i], s[j] that can both be dropped and
// replaced by a single different vertex u drawn from their original
// neighborhoods, for a net size decrease of one.
func trySwapTwo(g *graph.Graph, s []int, deadline time.Time, cancel <-chan struct{}) ([]int, bool) {
	inS := make(map[int]struct{}, len(s))
	for _, v := range s {
		inS[v] = struct{}{}
	}

	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if !stillRunning(deadline, cancel) {
				return nil, false
			}
			rest := withoutIndices(s, i, j)
			candidates := neighborCandidates(g, s[i], s[j], inS)
			for _, u := range candidates {
				trial := append(append([]int(nil), rest...), u)
				if feasibleWithout(g, trial) {
					return trial, true
				}
			}
		}
	}
	return nil, false
}

// neighborCandidates gathers the live neighbors of a and b that are not
// already in inS, as the candidate replacement set for a swap-two move.
func neighborCandidates(g *graph.Graph, a, b int, inS map[int]struct{}) []int {
	seen := make(map[int]struct{})
	var out []int
	add := func(vs []int) {
		for _, v := range vs {
			if _, skip := inS[v]; skip {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	if g.IsLive(a) {
		add(g.NeighborsOut(a))
		add(g.NeighborsIn(a))
	}
	if g.IsLive(b) {
		add(g.NeighborsOut(b))
		add(g.NeighborsIn(b))
	}
	return out
}

func withoutIndex(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func withoutIndices(s []int, i, j int) []int {
	out := make([]int, 0, len(s)-2)
	for k, v := range s {
		if k == i || k == j {
			continue
		}
		out = append(out, v)
	}
	return out
}
