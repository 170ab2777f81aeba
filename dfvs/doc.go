// Package dfvs is the root entry point: SolveExact and SolveHeuristic
// tie together reduce, scc (via driver), bnb and heuristic into the two
// top-level operations spec.md §6 exposes. Both leave g exactly as they
// found it, via Checkpoint/Rollback, mirroring heuristic.Solve's own
// policy — a caller can reuse the same *graph.Graph for both an exact
// and a heuristic run, or call SolveExact twice with different
// deadlines, without re-parsing input.
package dfvs
