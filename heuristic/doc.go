// Package heuristic computes a fast, feasible (but not necessarily
// optimal) DFVS to seed and periodically refresh the branch-and-bound
// incumbent.
//
// The two-phase constructive-then-local-search shape is grounded on
// lvlath/tsp's approximate solver split: tsp/approx.go builds an initial
// tour (construction), tsp/two_opt.go and tsp/three_opt.go improve it
// under a time budget (local search) — generalized here from tour edges
// to feedback-set vertices. Feasibility bookkeeping during local search
// reuses the topological-order approach of lvlath/dfs (dfs/topological.go).
package heuristic
