package graph

// LiveVertices returns every currently-live vertex id, ascending.
// Complexity: O(N).
func (g *Graph) LiveVertices() []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.live[v] {
			out = append(out, v)
		}
	}
	return out
}

// IsAcyclic reports whether the live subgraph currently has no directed
// cycle, via a three-color DFS. Grounded on lvlath/dfs's TopologicalSort
// (dfs/topological.go), generalized from string ids to the dense int
// range and from "error on cycle" to a plain boolean since callers here
// (bnb's base case) only care about feasibility, not the order itself.
func (g *Graph) IsAcyclic() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make([]uint8, g.n)
	// explicit stack to avoid recursion depth limits on large residuals,
	// per spec.md 9 "Recursion vs explicit stack".
	type frame struct {
		v         int
		neighbors []int
		i         int
	}
	var stack []frame

	for start := 0; start < g.n; start++ {
		if !g.live[start] || state[start] != white {
			continue
		}
		state[start] = gray
		stack = append(stack, frame{v: start, neighbors: g.NeighborsOut(start)})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i >= len(top.neighbors) {
				state[top.v] = black
				stack = stack[:len(stack)-1]
				continue
			}
			w := top.neighbors[top.i]
			top.i++
			switch state[w] {
			case white:
				state[w] = gray
				stack = append(stack, frame{v: w, neighbors: g.NeighborsOut(w)})
			case gray:
				return false
			}
		}
	}
	return true
}
