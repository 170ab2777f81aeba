// File: rules_double_twin.go
// Role: 4.C rules 5 and 6: DOUBLE-EDGE/PI-vertex and TWIN/flower, both
// sound consequences of a vertex being covered entirely (or largely) by
// 2-cycles through it.
package reduce

// applyDouble implements 4.C rule 5: if every incident edge of v has an
// anti-parallel partner (v participates only in 2-cycles), the neighbor
// count is within doubleEdgeDegreeCap, and every neighbor's only edges
// are its 2-cycle with v (so the neighbors are connected to each other
// only through v), v is forced into S. Any S avoiding v would have to
// contain every neighbor, and swapping them all for v keeps S feasible.
// The degree cap bounds the cost of this local pattern check; above the
// cap the rule declines.
func (e *Engine) applyDouble(v int, res *Result) bool {
	outs := e.g.NeighborsOut(v)
	ins := e.g.NeighborsIn(v)
	if len(outs) == 0 || len(outs) != len(ins) {
		return false
	}
	if len(outs) > doubleEdgeDegreeCap {
		return false
	}
	if !sameNeighborSet(outs, ins) {
		return false
	}
	for _, w := range outs {
		if e.g.DegreeOut(w) != 1 || e.g.DegreeIn(w) != 1 {
			return false
		}
	}
	e.g.RemoveVertex(v)
	res.forceIntoS(v)
	return true
}

// applyTwin implements 4.C rule 6: if at least twinFlowerThreshold of v's
// out-neighbors are also in-neighbors whose only edges are their 2-cycle
// with v (that many 2-cycles meet at v and share only v), v is forced
// into S: every cycle through such a petal passes through v, so any S
// avoiding v can trade its petals for v. Unlike applyDouble it also
// fires on vertices with additional edges, so it is checked
// independently.
func (e *Engine) applyTwin(v int, res *Result) bool {
	ins := e.g.NeighborsIn(v)
	inSet := make(map[int]struct{}, len(ins))
	for _, u := range ins {
		inSet[u] = struct{}{}
	}
	count := 0
	for _, w := range e.g.NeighborsOut(v) {
		if _, ok := inSet[w]; ok && e.g.DegreeOut(w) == 1 && e.g.DegreeIn(w) == 1 {
			count++
		}
	}
	if count < twinFlowerThreshold {
		return false
	}
	e.g.RemoveVertex(v)
	res.forceIntoS(v)
	return true
}

func sameNeighborSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		if _, ok := set[x]; !ok {
			return false
		}
	}
	return true
}
