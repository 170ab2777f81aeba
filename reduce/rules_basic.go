// File: rules_basic.go
// Role: the FAST-level rules (4.C 1-3): SELF-LOOP, SINK/SOURCE, CORE.
// These are the only rules re-run between every branch-and-bound branch,
// so they stay O(degree) per vertex with no auxiliary scans.
package reduce

// applySelfLoop implements 4.C rule 1: a live self-loop forces v into S.
func (e *Engine) applySelfLoop(v int, res *Result) bool {
	if !e.g.HasEdge(v, v) {
		return false
	}
	e.g.RemoveVertex(v)
	res.forceIntoS(v)
	return true
}

// applySinkSource implements 4.C rule 2: a vertex with no out-edges or no
// in-edges lies on no cycle and can be contracted at no cost.
func (e *Engine) applySinkSource(v int, res *Result) bool {
	if e.g.DegreeOut(v) != 0 && e.g.DegreeIn(v) != 0 {
		return false
	}
	e.g.RemoveVertex(v)
	res.contract(v)
	return true
}

// applyCore implements 4.C rule 3: a vertex with in-degree or out-degree
// exactly 1 (a PIE-like chain link) is bypassed via ContractVertex. If the
// bypass collapses a 2-cycle into a self-loop at some neighbor u, that u
// is forced into S immediately rather than left for the next sweep's
// SELF-LOOP check, since u is no longer adjacent to v for that rule to
// find it again.
func (e *Engine) applyCore(v int, res *Result) bool {
	in, out := e.g.DegreeIn(v), e.g.DegreeOut(v)
	if in != 1 && out != 1 {
		return false
	}
	// Sink/source already handles degree-0 on either side; CORE only
	// fires on genuine chain links (both sides present).
	if in == 0 || out == 0 {
		return false
	}
	forced := e.g.ContractVertex(v)
	res.contract(v)
	for _, u := range forced {
		if e.g.IsLive(u) {
			e.g.RemoveVertex(u)
		}
		res.forceIntoS(u)
	}
	return true
}
