// File: rules_crown.go
// Role: 4.C rule 7, CROWN: generalizes SINK/SOURCE to a small pocket of
// vertices whose only connection to the rest of the graph runs through a
// single cut vertex v. If that pocket has no internal cycle, every cycle
// through a pocket vertex also passes through v, so some optimal S avoids
// the pocket: each pocket vertex is bypassed with ContractVertex, and a
// bypass that closes a self-loop at v forces v into S.
//
// This is a bounded, local approximation of the LP-style crown reduction
// spec.md 4.C rule 7 describes; it intentionally does not attempt the
// full crown-decomposition machinery (a maximum matching against an
// independent set), since PACE instances are sparse and a radius-1 pocket
// search already captures the common case cheaply.
package reduce

// applyCrown implements 4.C rule 7, bounded by e.crownBudget.
func (e *Engine) applyCrown(v int, res *Result) bool {
	pocket := e.crownPocket(v)
	if len(pocket) == 0 || len(pocket) > e.crownBudget {
		return false
	}
	if e.pocketHasInternalCycle(pocket, v) {
		return false
	}
	for _, u := range pocket {
		if !e.g.IsLive(u) {
			continue
		}
		forced := e.g.ContractVertex(u)
		res.contract(u)
		for _, w := range forced {
			if e.g.IsLive(w) {
				e.g.RemoveVertex(w)
			}
			res.forceIntoS(w)
		}
	}
	return true
}

// crownPocket collects v's direct neighbors whose own neighbors (in and
// out) are all contained in {v} ∪ pocket — i.e. vertices with no edge
// escaping to the rest of the graph except through v.
func (e *Engine) crownPocket(v int) []int {
	candidates := make(map[int]struct{})
	for _, u := range e.g.NeighborsOut(v) {
		candidates[u] = struct{}{}
	}
	for _, u := range e.g.NeighborsIn(v) {
		candidates[u] = struct{}{}
	}
	delete(candidates, v)
	if len(candidates) == 0 {
		return nil
	}

	allowed := make(map[int]struct{}, len(candidates)+1)
	allowed[v] = struct{}{}
	for u := range candidates {
		allowed[u] = struct{}{}
	}

	for changed := true; changed; {
		changed = false
		for u := range candidates {
			if _, ok := allowed[u]; ok && !isClosedWithin(e, u, allowed) {
				delete(allowed, u)
				changed = true
			}
		}
	}

	var pocket []int
	for u := range candidates {
		if _, ok := allowed[u]; ok {
			pocket = append(pocket, u)
		}
	}
	return pocket
}

func isClosedWithin(e *Engine, u int, allowed map[int]struct{}) bool {
	for _, w := range e.g.NeighborsOut(u) {
		if _, ok := allowed[w]; !ok {
			return false
		}
	}
	for _, w := range e.g.NeighborsIn(u) {
		if _, ok := allowed[w]; !ok {
			return false
		}
	}
	return true
}

// pocketHasInternalCycle reports whether the subgraph induced by pocket
// (excluding v) contains a directed cycle, via a small DFS restricted to
// pocket membership.
func (e *Engine) pocketHasInternalCycle(pocket []int, v int) bool {
	inPocket := make(map[int]struct{}, len(pocket))
	for _, u := range pocket {
		inPocket[u] = struct{}{}
	}
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make(map[int]uint8, len(pocket))
	var visit func(u int) bool
	visit = func(u int) bool {
		state[u] = gray
		for _, w := range e.g.NeighborsOut(u) {
			if w == v {
				continue
			}
			if _, ok := inPocket[w]; !ok {
				continue
			}
			switch state[w] {
			case white:
				if visit(w) {
					return true
				}
			case gray:
				return true
			}
		}
		state[u] = black
		return false
	}
	for _, u := range pocket {
		if state[u] == white {
			if visit(u) {
				return true
			}
		}
	}
	return false
}
