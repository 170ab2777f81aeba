package reduce

import (
	"sort"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// Level selects which rule subset ReduceToFixpoint applies.
type Level int

const (
	// FAST runs only rules 1-3 (SELF-LOOP, SINK/SOURCE, CORE): the cheap,
	// purely local rules safe to re-run between every B&B branch.
	FAST Level = iota
	// FULL runs the entire catalog, rules 1-7. Used at the root and at
	// SCC split, where the extra cost of DOME/DOUBLE-EDGE/TWIN/CROWN is
	// amortized over the whole remaining search.
	FULL
)

// Result accumulates the outcome of one ReduceToFixpoint call: every
// vertex the rules forced into S, and every vertex they contracted away
// (removed without S-cost). Both are sorted ascending before the call
// returns.
type Result struct {
	ForcedIntoS []int
	Contracted  []int

	// Contradiction is set when ReduceToFixpointExcluding forced a vertex
	// into S that the caller had declared unavailable for forcing (the
	// bnb package's Branch-OUT obligation, spec.md 4.F step 6): the
	// branch that excluded v is infeasible and should be pruned.
	Contradiction bool
}

func (r *Result) forceIntoS(vs ...int) {
	r.ForcedIntoS = append(r.ForcedIntoS, vs...)
}

func (r *Result) contract(vs ...int) {
	r.Contracted = append(r.Contracted, vs...)
}

// Engine applies the reduction rule catalog to a *graph.Graph until no
// rule fires (a fixpoint). One Engine is bound to one Graph for its
// lifetime; callers typically construct a fresh Engine per checkpoint
// scope in bnb, since the rule parameters (crownBudget) rarely change
// mid-search.
type Engine struct {
	g           *graph.Graph
	crownBudget int
}

// NewEngine binds a reduction Engine to g.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{g: g, crownBudget: DefaultCrownBudget}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReduceToFixpoint applies the rule catalog selected by level until a
// full sweep over all live vertices produces no mutation. Each sweep
// visits vertices in ascending id and tries the rules on each vertex in
// the order listed in spec.md 4.C, moving on to the next vertex as soon
// as one rule fires. Complexity is bounded by the number of sweeps times O(V+E)
// per sweep; in practice the catalog converges in very few sweeps because
// each rule only ever shrinks the graph.
func (e *Engine) ReduceToFixpoint(level Level) Result {
	return e.reduceToFixpoint(level, nil)
}

// ReduceToFixpointExcluding behaves exactly like ReduceToFixpoint, except
// that if any rule forces a vertex in excluded into S, no further sweep
// runs once the current one completes, and the returned Result has
// Contradiction set: excluded vertices are
// the bnb package's Branch-OUT obligation (a vertex this subtree has
// committed to keeping out of S), and a rule proving that vertex must be
// in S means the subtree rooted at this exclusion is infeasible.
func (e *Engine) ReduceToFixpointExcluding(level Level, excluded map[int]struct{}) Result {
	return e.reduceToFixpoint(level, excluded)
}

func (e *Engine) reduceToFixpoint(level Level, excluded map[int]struct{}) Result {
	var res Result
	for {
		changed := false
		for v := 0; v < e.g.N(); v++ {
			if !e.g.IsLive(v) {
				continue
			}
			if e.applySelfLoop(v, &res) {
				changed = true
				continue
			}
			if e.applySinkSource(v, &res) {
				changed = true
				continue
			}
			if e.applyCore(v, &res) {
				changed = true
				continue
			}
			if level == FAST {
				continue
			}
			if e.applyDome(v, &res) {
				changed = true
				continue
			}
			if e.applyDouble(v, &res) {
				changed = true
				continue
			}
			if e.applyTwin(v, &res) {
				changed = true
				continue
			}
			if e.applyCrown(v, &res) {
				changed = true
				continue
			}
		}
		if excluded != nil && hasExcludedForced(res.ForcedIntoS, excluded) {
			res.Contradiction = true
			break
		}
		if !changed {
			break
		}
	}
	sort.Ints(res.ForcedIntoS)
	sort.Ints(res.Contracted)
	return res
}

func hasExcludedForced(forced []int, excluded map[int]struct{}) bool {
	for _, v := range forced {
		if _, bad := excluded[v]; bad {
			return true
		}
	}
	return false
}
