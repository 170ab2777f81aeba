// File: subgraph.go
// Role: building the induced subgraph for one SCC, with local (dense,
// 0-based) vertex ids the worker's own Graph, reduce.Engine, bnb.Engine
// and heuristic.Solve all need, and the mapping back to the original
// graph's vertex ids for the result.
package driver

import (
	"sort"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// induced builds a fresh *graph.Graph containing exactly vertices and
// the edges of g with both endpoints in vertices, remapped to dense ids
// 0..len(vertices)-1. The returned slice maps a local id back to its
// original global id: sub vertex i corresponds to global vertex
// globalOf[i].
//
// g is only read here, never mutated — concurrent calls to induced from
// multiple workers against the same g are safe because Go's built-in
// maps tolerate concurrent reads with no concurrent writes, and nothing
// in Driver.Solve writes to g once scc.Tarjan has run.
func induced(g *graph.Graph, vertices []int) (sub *graph.Graph, globalOf []int) {
	globalOf = append([]int(nil), vertices...)
	sort.Ints(globalOf)

	localOf := make(map[int]int, len(globalOf))
	for i, v := range globalOf {
		localOf[v] = i
	}

	sub = graph.NewGraph(len(globalOf))
	for _, v := range globalOf {
		for _, w := range g.NeighborsOut(v) {
			if lw, ok := localOf[w]; ok {
				sub.AddEdge(localOf[v], lw)
			}
		}
	}
	return sub, globalOf
}
