package scc

import "github.com/xosmig/breaking-the-cycle/graph"

// Component is one strongly connected component. Trivial reports whether
// the component is a single vertex, in which case it lies on no cycle
// (self-loops are eliminated by the SELF-LOOP reduction rule long before
// scc.Tarjan ever runs, so a size-1 component is unconditionally acyclic)
// and can be removed from further consideration without entering
// branch-and-bound at all.
type Component struct {
	Vertices []int
	Trivial  bool
}

// frame is one level of the explicit DFS stack: the vertex being visited
// and a cursor into its (precomputed, ascending) out-neighbor list.
type frame struct {
	v         int
	neighbors []int
	i         int
}

// Tarjan partitions the live vertices of g into strongly connected
// components, returned in reverse topological order (the order in which
// Tarjan's algorithm closes them), matching spec.md 4.B. Complexity is
// O(V+E).
func Tarjan(g *graph.Graph) []Component {
	n := g.N()
	const unvisited = -1

	index := 0
	indices := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = unvisited
	}

	var sccStack []int
	var components []Component
	var callStack []frame

	visit := func(start int) {
		indices[start] = index
		low[start] = index
		index++
		sccStack = append(sccStack, start)
		onStack[start] = true
		callStack = append(callStack, frame{v: start, neighbors: g.NeighborsOut(start)})

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			if top.i < len(top.neighbors) {
				w := top.neighbors[top.i]
				top.i++
				switch {
				case indices[w] == unvisited:
					indices[w] = index
					low[w] = index
					index++
					sccStack = append(sccStack, w)
					onStack[w] = true
					callStack = append(callStack, frame{v: w, neighbors: g.NeighborsOut(w)})
				case onStack[w]:
					if indices[w] < low[top.v] {
						low[top.v] = indices[w]
					}
				}
				continue
			}

			// top is fully explored: close it out and propagate low-link
			// to the parent frame, if any.
			v := top.v
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
			if low[v] == indices[v] {
				var comp []int
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				components = append(components, Component{
					Vertices: comp,
					Trivial:  len(comp) == 1,
				})
			}
		}
	}

	for v := 0; v < n; v++ {
		if g.IsLive(v) && indices[v] == unvisited {
			visit(v)
		}
	}

	return components
}
