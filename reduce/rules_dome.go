// File: rules_dome.go
// Role: 4.C rule 4, DOME: remove an edge (u,v) when every path from v
// back to u is already guaranteed by other edges, so (u,v) itself can
// never be the unique way to close a cycle. Edges that are half of a
// 2-cycle are never removed: the 2-cycle u<->v has no alternative route.
package reduce

// applyDome scans v's out-edges for domination, per the restricted
// reachability test in spec.md 4.C rule 4: edge (u,v) [u=the scanned
// vertex, v=a neighbor] is redundant if N_out(v) ⊆ N_out(u) ∪ {u}, or if
// N_in(u) ⊆ N_in(v) ∪ {v}. Either condition means every cycle that could
// use (u,v) has an alternative route through edges that survive its
// removal. Edges with a live reverse edge (v,u) are skipped.
func (e *Engine) applyDome(u int, res *Result) bool {
	changed := false
	for _, v := range e.g.NeighborsOut(u) {
		if v == u || e.g.HasEdge(v, u) {
			continue
		}
		if subsetPlus(e.g.NeighborsOut(v), e.g.NeighborsOut(u), u) ||
			subsetPlus(e.g.NeighborsIn(u), e.g.NeighborsIn(v), v) {
			e.g.RemoveEdge(u, v)
			changed = true
		}
	}
	return changed
}

// subsetPlus reports whether every element of a is in b or equals extra.
func subsetPlus(a, b []int, extra int) bool {
	bs := make(map[int]struct{}, len(b))
	for _, x := range b {
		bs[x] = struct{}{}
	}
	for _, x := range a {
		if x == extra {
			continue
		}
		if _, ok := bs[x]; !ok {
			return false
		}
	}
	return true
}
