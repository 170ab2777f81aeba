// Package driver dispatches the per-SCC exact search across a worker
// pool, per spec.md 4.G. Each worker gets its own induced subgraph
// (graph, scc, reduce, heuristic and bnb are all single-owner, no-lock
// packages — see graph's doc comment) and runs heuristic.Solve followed
// by bnb.SolveSCC against a shared deadline.
//
// Grounded on core/types.go's split-lock discipline (muVert/muEdgeAdj),
// generalized here to a single sync.Mutex guarding the one shared
// mutable value — the result accumulator — since the per-SCC subgraphs
// themselves are never shared between workers. No third-party
// goroutine-pool library is used: a grep of the whole example pack found
// no real import of errgroup, ants or semaphore outside unrelated
// transaction-engine code, so the worker pool here is a fixed-size
// channel-and-WaitGroup pool in the language's own idiom.
package driver
