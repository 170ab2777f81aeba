// Package bound computes dual (lower) bounds on the optimal DFVS size of
// a graph.Graph's live subgraph: a disjoint-short-cycle packing bound and
// a combinatorial LP-relaxation surrogate, combined by max.
//
// Grounded on lvlath/bfs's depth-capped breadth-first exploration
// (bfs/bfs.go) for short-cycle discovery, lvlath/dfs's cycle detector
// (dfs/cycle.go) as the harder-instance fallback named in spec.md 4.E,
// and lvlath/tsp's bound_onetree.go for the shape of an admissible,
// budget-bounded relaxation bound recomputed from scratch per call.
package bound
