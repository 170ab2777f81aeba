// File: fallback.go
// Role: the uncapped DFS cycle search that findShortCycle falls back to
// once no cycle closes within shortCycleDepthCap, per spec.md 4.E "a
// combinatorial LP-relaxation surrogate ... DFS cycle detector as the
// harder-instance fallback". Iterative, explicit frame stack, matching
// graph.Graph.IsAcyclic's three-color traversal rather than recursion.
package bound

import "github.com/xosmig/breaking-the-cycle/graph"

const (
	white uint8 = 0
	gray  uint8 = 1
	black uint8 = 2
)

type dfsFrame struct {
	v         int
	neighbors []int
	i         int
}

// findAnyCycle runs an iterative DFS over g's live, non-excluded
// vertices and returns the first back-edge cycle it encounters, or nil
// if the residual is acyclic.
func findAnyCycle(g *graph.Graph, excluded map[int]struct{}) []int {
	n := g.N()
	color := make([]uint8, n)
	parent := make([]int, n)

	for s := 0; s < n; s++ {
		if !g.IsLive(s) || color[s] != white {
			continue
		}
		if _, bad := excluded[s]; bad {
			continue
		}
		if cycle := dfsFrom(g, s, excluded, color, parent); cycle != nil {
			return cycle
		}
	}
	return nil
}

func dfsFrom(g *graph.Graph, start int, excluded map[int]struct{}, color []uint8, parent []int) []int {
	stack := []dfsFrame{{v: start, neighbors: g.NeighborsOut(start)}}
	color[start] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false

		for top.i < len(top.neighbors) {
			w := top.neighbors[top.i]
			top.i++
			if _, bad := excluded[w]; bad {
				continue
			}
			if !g.IsLive(w) {
				continue
			}
			switch color[w] {
			case white:
				color[w] = gray
				parent[w] = top.v
				stack = append(stack, dfsFrame{v: w, neighbors: g.NeighborsOut(w)})
				advanced = true
			case gray:
				cycle := []int{w}
				for cur := top.v; cur != w; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				return cycle
			case black:
				// already fully explored, no cycle through here
			}
			if advanced {
				break
			}
		}

		if advanced {
			continue
		}
		color[top.v] = black
		stack = stack[:len(stack)-1]
	}
	return nil
}
