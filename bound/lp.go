// File: lp.go
// Role: LB_lp, the cycle-packing surrogate named in spec.md 4.E, in the
// form of the dual of the cycle-cover LP relaxation (no vertex's total
// packing weight may exceed 1), computed by iterative augmentation rather
// than an exact LP solve, in the budget-bounded, recompute-from-scratch
// shape of tsp/bound_onetree.go. As implemented, every packed cycle
// saturates all of its vertices, so the packed cycles are vertex-disjoint
// and no fractional weight is ever produced.
package bound

import (
	"math"

	"github.com/xosmig/breaking-the-cycle/graph"
)

const (
	lpMaxIterations = 64
	lpEpsilon       = 1e-9
)

// LBLP computes a fractional cycle-packing lower bound on g's live
// subgraph. Every vertex starts with packing capacity 1.0; each round
// finds a cycle among vertices with capacity remaining and packs it at
// the smallest capacity among its vertices, debiting that amount from
// every vertex on the cycle. A vertex with no capacity left can no
// longer participate in a new packed cycle, so it is excluded from
// subsequent search. The accumulated packing weight is a valid lower
// bound on the optimal feedback vertex set size: any FVS must hit every
// packed cycle, and no vertex can be charged more than 1 across all
// packed cycles, so |S| is at least the total packing weight.
//
// Every unblocked vertex still has its full capacity of 1.0, so each
// cycle is packed at weight 1 and blocks all of its vertices: the result
// is a disjoint packing of at most lpMaxIterations cycles found in the
// same order as LBPack's, and it never exceeds LBPack.
func LBLP(g *graph.Graph) int {
	n := g.N()
	capacity := make([]float64, n)
	for v := range capacity {
		capacity[v] = 1.0
	}
	blocked := make(map[int]struct{})

	total := 0.0
	for iter := 0; iter < lpMaxIterations; iter++ {
		cycle := findShortCycle(g, blocked)
		if cycle == nil {
			cycle = findAnyCycle(g, blocked)
		}
		if cycle == nil {
			break
		}

		m := capacity[cycle[0]]
		for _, v := range cycle[1:] {
			if capacity[v] < m {
				m = capacity[v]
			}
		}
		if m <= lpEpsilon {
			blockSaturated(cycle, capacity, blocked)
			continue
		}

		total += m
		for _, v := range cycle {
			capacity[v] -= m
		}
		blockSaturated(cycle, capacity, blocked)
	}

	// Guard against floating-point drift pushing a value like 2.0000000001
	// to ceil 3 when the true packing weight is exactly 2.
	return int(math.Ceil(total - lpEpsilon))
}

func blockSaturated(cycle []int, capacity []float64, blocked map[int]struct{}) {
	for _, v := range cycle {
		if capacity[v] <= lpEpsilon {
			blocked[v] = struct{}{}
		}
	}
}
