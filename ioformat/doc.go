// Package ioformat reads and writes the METIS-derived DFVS text formats
// of spec.md §6: ReadMETIS parses the 1-indexed, line-oriented input
// (header "n m 0", `%`-prefixed comments, one out-neighbor line per
// vertex) into a *graph.Graph; WriteSolution writes a vertex-per-line,
// ascending, 1-indexed solution.
//
// Parse failures are reported via *ParseError carrying a precise
// line/column, in the teacher's fmt.Errorf("...: %w", err) wrapping
// style (dfs/cycle.go), generalized from a single wrapped sentinel to a
// structured, position-carrying error type since spec.md §7 requires a
// "precise line/column diagnostic" that a bare wrapped error cannot
// carry.
package ioformat
