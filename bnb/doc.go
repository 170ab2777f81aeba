// Package bnb implements the exact branch-and-bound search over one
// strongly connected component: reduce, bound, branch, repeat, per
// spec.md 4.F. It is grounded on tsp/bb.go's bbEngine: a dedicated
// engine struct carrying configuration, deadline, and search state, with
// a recursive search method that checks the deadline, prunes by a lower
// bound against the current incumbent, and otherwise branches.
//
// One Engine owns one *graph.Graph exclusively for its lifetime; like
// graph, scc, reduce, heuristic and bound it does no locking and must
// never be shared across goroutines — driver gives each worker its own
// Engine over its own Graph.
package bnb
