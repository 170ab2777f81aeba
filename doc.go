// Command-line and library tooling for the directed feedback vertex set
// problem: given a digraph, find a minimum set of vertices whose removal
// leaves it acyclic.
//
// The solver pipeline lives in a handful of single-purpose packages:
//
//	graph/     — the mutable int-indexed digraph store, with a
//	             checkpoint/rollback journal so every algorithm below can
//	             try a change and undo it cheaply
//	scc/       — strongly connected component decomposition (iterative
//	             Tarjan); independent components never interact, so the
//	             exact search only ever has to solve one at a time
//	reduce/    — the kernelization rule catalog (self-loops, sinks and
//	             sources, degree-one cores, dominated and doubled edges,
//	             twins, crowns) applied to a fixpoint before any search
//	bound/     — lower bounds on the optimal set size, by disjoint cycle
//	             packing and by a fractional LP-duality argument
//	heuristic/ — a fast constructive-plus-local-search upper bound, used
//	             both standalone and to seed the exact search's incumbent
//	bnb/       — the exact branch-and-bound search over one component
//	driver/    — decomposes into components and runs the search over a
//	             fixed-size worker pool that takes components one at a time
//	dfvs/      — SolveExact and SolveHeuristic, the two entry points that
//	             tie the above together
//	ioformat/  — the METIS-derived text format PACE instances are shipped
//	             in, plus the solution file format
//
// cmd/dfvscli wraps dfvs in a cobra command line with solve and heuristic
// subcommands; internal/cli holds the command tree itself, and
// internal/randgraph generates random instances for testing.
package breakingthecycle
