// File: pack.go
// Role: LB_pack, the disjoint-short-cycle-packing bound (4.E): greedily
// find vertex-disjoint cycles, one unit of lower bound per cycle found.
package bound

import "github.com/xosmig/breaking-the-cycle/graph"

// shortCycleDepthCap bounds the BFS search depth used to find short
// cycles cheaply before falling back to an uncapped DFS search.
const shortCycleDepthCap = 4

// LBPack computes the disjoint-cycle-packing lower bound on g's live
// subgraph, per spec.md 4.E: repeatedly discover a cycle (preferring a
// short one via depth-capped BFS, falling back to DFS when none is found
// within the cap), count it, and exclude its vertices from further
// search. The bound is monotone under vertex removal into S, since every
// packed cycle needs at least one vertex removed regardless of which
// vertex that turns out to be.
func LBPack(g *graph.Graph) int {
	excluded := make(map[int]struct{})
	lb := 0
	for {
		cycle := findShortCycle(g, excluded)
		if cycle == nil {
			cycle = findAnyCycle(g, excluded)
		}
		if cycle == nil {
			break
		}
		lb++
		for _, v := range cycle {
			excluded[v] = struct{}{}
		}
	}
	return lb
}

// findShortCycle scans live, non-excluded vertices ascending and runs a
// depth-capped BFS from each looking for a closing edge back to the
// search root.
func findShortCycle(g *graph.Graph, excluded map[int]struct{}) []int {
	for s := 0; s < g.N(); s++ {
		if !g.IsLive(s) {
			continue
		}
		if _, bad := excluded[s]; bad {
			continue
		}
		if cycle := bfsCycleFrom(g, s, excluded); cycle != nil {
			return cycle
		}
	}
	return nil
}

func bfsCycleFrom(g *graph.Graph, s int, excluded map[int]struct{}) []int {
	parent := map[int]int{s: s}
	depth := map[int]int{s: 0}
	queue := []int{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		if d >= shortCycleDepthCap {
			continue
		}
		for _, w := range g.NeighborsOut(u) {
			if _, bad := excluded[w]; bad {
				continue
			}
			if w == s {
				cycle := []int{s}
				for cur := u; cur != s; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				return cycle
			}
			if _, seen := parent[w]; seen {
				continue
			}
			parent[w] = u
			depth[w] = d + 1
			queue = append(queue, w)
		}
	}
	return nil
}
