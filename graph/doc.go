// Package graph provides the mutable directed graph store used throughout
// breaking-the-cycle: a dense integer-indexed vertex set, separate
// out/in adjacency per vertex, and a mutation journal that lets a caller
// checkpoint the graph and roll back to it exactly.
//
// Unlike lvlath/core (its ancestor in spirit), Graph is never shared across
// goroutines: every branch-and-bound worker owns one Graph exclusively, so
// there is no internal locking. Vertex identifiers are a dense range [0,n)
// rather than strings, since PACE instances are already integer-indexed and
// a string-keyed adjacency map would waste both time and memory at the
// 10^5-vertex scale this solver targets.
//
// Graph never returns soft errors for well-formed calls: operating on a
// non-live vertex, or rolling back a stale Checkpoint, is a programming
// error. Both panic rather than return an error value, within the limits
// of stale-checkpoint detection described on Rollback.
package graph
