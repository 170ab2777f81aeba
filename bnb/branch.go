// File: branch.go
// Role: the two branching shapes of 4.F: the 2-cycle variant on dense
// nodes (step "2-cycle branching") and the general Branch IN / Branch
// OUT pair for everything else.
package bnb

import (
	"sort"

	"github.com/xosmig/breaking-the-cycle/reduce"
)

// pickBranchVertex selects the live, non-excluded vertex with the
// largest degree_in*degree_out product (the densest node, per spec.md
// 4.F), breaking ties by ascending id via the scan order. If that vertex
// sits on a direct 2-cycle with some non-excluded partner, the partner
// is returned too, to trigger the tighter 2-cycle branch. Returns
// v == -1 if every live vertex is excluded.
func (e *Engine) pickBranchVertex(excluded map[int]struct{}) (v, partner int) {
	best, bestScore := -1, -1
	for u := 0; u < e.g.N(); u++ {
		if !e.g.IsLive(u) {
			continue
		}
		if _, bad := excluded[u]; bad {
			continue
		}
		score := e.g.DegreeOut(u) * e.g.DegreeIn(u)
		if score > bestScore {
			bestScore = score
			best = u
		}
	}
	if best == -1 {
		return -1, -1
	}
	for _, w := range e.g.NeighborsOut(best) {
		if _, bad := excluded[w]; bad {
			continue
		}
		if e.g.HasEdge(w, best) {
			return best, w
		}
	}
	return best, -1
}

// branchTwoCycle handles a direct 2-cycle u<->v: any FVS must remove at
// least one of them, so the exhaustive split is "v in S" or "u in S"
// (there is no third "neither" case to consider, since that leaves the
// 2-cycle itself uncovered).
func (e *Engine) branchTwoCycle(partialS []int, excluded map[int]struct{}, v, u int) {
	e.branchForceIn(partialS, excluded, v)
	if !e.deadlineOK() {
		return
	}
	e.branchForceIn(partialS, excluded, u)
}

// branchForceIn removes w from g, runs FAST reduction, and recurses with
// w (and anything the reduction forced) added to partialS.
func (e *Engine) branchForceIn(partialS []int, excluded map[int]struct{}, w int) {
	cp := e.g.Checkpoint()
	defer e.g.Rollback(cp)

	e.g.RemoveVertex(w)
	res := reduce.NewEngine(e.g).ReduceToFixpoint(reduce.FAST)

	next := unionSorted(partialS, append([]int{w}, res.ForcedIntoS...))
	e.search(next, excluded)
}

// branchInOut is the general Branch IN / Branch OUT pair of 4.F step 6:
// either v is in S (branchForceIn), or it is committed to stay out of S
// for the rest of this subtree. In the OUT branch, FULL reduction is
// re-run on the residual to see whether anything is now forced; the
// rules themselves do not treat v specially, and the excluded set is
// only consulted after each sweep. If a rule forced v anyway, the
// reduce.Result.Contradiction flag is set and this subtree is pruned;
// otherwise v is skipped when later branch vertices are picked.
func (e *Engine) branchInOut(partialS []int, excluded map[int]struct{}, v int) {
	e.branchForceIn(partialS, excluded, v)
	if !e.deadlineOK() {
		return
	}

	cp := e.g.Checkpoint()
	defer e.g.Rollback(cp)

	outExcluded := withExcluded(excluded, v)
	res := reduce.NewEngine(e.g).ReduceToFixpointExcluding(reduce.FULL, outExcluded)
	if res.Contradiction {
		return
	}

	next := unionSorted(partialS, res.ForcedIntoS)
	e.search(next, outExcluded)
}

func withExcluded(excluded map[int]struct{}, v int) map[int]struct{} {
	out := make(map[int]struct{}, len(excluded)+1)
	for k := range excluded {
		out[k] = struct{}{}
	}
	out[v] = struct{}{}
	return out
}

func unionSorted(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, v := range a {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
