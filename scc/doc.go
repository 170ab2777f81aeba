// Package scc decomposes a graph.Graph into strongly connected components
// using a single-pass iterative Tarjan algorithm.
//
// Grounded on original_source/src/graph/connectivity.rs (the PACE solver's
// own recursive Rust Tarjan), reworked into the explicit-frame-stack style
// lvlath's dfs package uses for traversal state (dfs/topological.go),
// because Go goroutine stacks are bounded and PACE instances can have a
// single SCC spanning most of a 10^5-vertex graph.
package scc
