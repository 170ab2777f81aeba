// File: methods.go
// Role: mutation and query primitives on Graph: AddEdge/RemoveEdge,
// RemoveVertex, ContractVertex, neighbor/degree queries, and the
// Checkpoint/Rollback pair.
//
// Determinism: NeighborsOut/NeighborsIn return ascending-id slices so
// callers that branch on "ascending id" tie-breaks (reduce, bnb) get a
// stable order without re-sorting themselves.
//
// Failure policy: operating on a vertex for which IsLive reports false is
// a programming error and panics, per lvlath/builder's documented policy
// of panicking on caller misuse rather than returning sentinel errors for
// conditions the caller controls.
package graph

import "sort"

func (g *Graph) checkLive(v int) {
	if v < 0 || v >= g.n || !g.live[v] {
		panic("graph: operation on non-live vertex")
	}
}

// IsLive reports whether v is still present in the graph.
func (g *Graph) IsLive(v int) bool {
	return v >= 0 && v < g.n && g.live[v]
}

// HasEdge reports whether the live edge u->v exists.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || !g.live[u] {
		return false
	}
	_, ok := g.out[u][v]
	return ok
}

// DegreeOut returns the number of live out-edges of v.
func (g *Graph) DegreeOut(v int) int {
	g.checkLive(v)
	return len(g.out[v])
}

// DegreeIn returns the number of live in-edges of v.
func (g *Graph) DegreeIn(v int) int {
	g.checkLive(v)
	return len(g.in[v])
}

// NeighborsOut returns the live out-neighbors of v, sorted ascending.
func (g *Graph) NeighborsOut(v int) []int {
	g.checkLive(v)
	return sortedKeys(g.out[v])
}

// NeighborsIn returns the live in-neighbors of v, sorted ascending.
func (g *Graph) NeighborsIn(v int) []int {
	g.checkLive(v)
	return sortedKeys(g.in[v])
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// addEdgeRaw inserts u->v without touching the journal. Used both by
// AddEdge and by Rollback when replaying an undo.
func (g *Graph) addEdgeRaw(u, v int) {
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
}

// removeEdgeRaw deletes u->v without touching the journal.
func (g *Graph) removeEdgeRaw(u, v int) {
	delete(g.out[u], v)
	delete(g.in[v], u)
}

// AddEdge inserts u->v if absent. Both endpoints must be live; u==v
// (a self-loop) is permitted structurally — the reduction engine's
// SELF-LOOP rule is responsible for forcing it into S immediately, per
// the spec's "self-loops are permitted during ingestion" invariant.
// Duplicate edges are a no-op (set semantics de-duplicates automatically).
func (g *Graph) AddEdge(u, v int) {
	g.checkLive(u)
	g.checkLive(v)
	if _, exists := g.out[u][v]; exists {
		return
	}
	g.addEdgeRaw(u, v)
	g.journal = append(g.journal, undoRecord{kind: opAddEdge, u: u, v: v})
}

// RemoveEdge deletes u->v if present. Removing an absent edge is a no-op
// (mirrors lvlath's idempotent-on-absence policy for symmetric operations,
// though lvlath itself treats RemoveEdge-of-absent as an error; here a
// no-op is simpler for the reduction engine's rewiring call sites, which
// frequently attempt removal speculatively).
func (g *Graph) RemoveEdge(u, v int) {
	g.checkLive(u)
	g.checkLive(v)
	if _, exists := g.out[u][v]; !exists {
		return
	}
	g.removeEdgeRaw(u, v)
	g.journal = append(g.journal, undoRecord{kind: opRemoveEdge, u: u, v: v})
}

// RemoveVertex removes v and every edge incident to it. The incident-edge
// removals are journaled individually, followed by one opRemoveVertex
// record for the live-flag flip itself; Rollback walks the journal
// backwards, so it restores v's live flag first and then the edges one
// by one, in reverse order.
func (g *Graph) RemoveVertex(v int) {
	g.checkLive(v)
	for _, w := range g.NeighborsOut(v) {
		g.RemoveEdge(v, w)
	}
	for _, u := range g.NeighborsIn(v) {
		g.RemoveEdge(u, v)
	}
	g.live[v] = false
	g.journal = append(g.journal, undoRecord{kind: opRemoveVertex, u: v})
}

// ContractVertex bypasses v: for every (u,v) and (v,w) with u != v != w it
// adds (u,w), then removes v. It is sound only when the caller (the
// reduction engine's CORE rule) has already established that v's in- or
// out-degree is 1 — ContractVertex itself does not re-check this, matching
// lvlath's separation between cheap structural mutators and the algorithms
// that decide when it is safe to call them.
//
// If the bypass would create a self-loop at some u (because u was
// simultaneously an in- and an out-neighbor of v), that self-loop is not
// materialized; instead u's id is collected and returned so the caller can
// force u into S, per spec.md 4.A "self-loops created by bypass cause the
// endpoint to be forced into S by the caller". The returned slice is
// sorted ascending and de-duplicated.
func (g *Graph) ContractVertex(v int) []int {
	g.checkLive(v)
	ins := g.NeighborsIn(v)
	outs := g.NeighborsOut(v)

	forcedSet := make(map[int]struct{})
	for _, u := range ins {
		if u == v {
			continue
		}
		for _, w := range outs {
			if w == v {
				continue
			}
			if u == w {
				forcedSet[u] = struct{}{}
				continue
			}
			g.AddEdge(u, w)
		}
	}
	g.RemoveVertex(v)

	forced := make([]int, 0, len(forcedSet))
	for u := range forcedSet {
		forced = append(forced, u)
	}
	sort.Ints(forced)
	return forced
}

// Checkpoint returns a handle to the current journal position.
func (g *Graph) Checkpoint() Checkpoint {
	return Checkpoint(len(g.journal))
}

// Rollback undoes every mutation recorded since cp, restoring the graph to
// bit-identical state (same live set, same edge sets). It panics when cp
// is negative or lies beyond the current journal length, e.g. a
// checkpoint taken after mutations that have since been rolled back.
// A checkpoint is only a journal length, so a stale one whose position
// the journal has grown back past, or one from a different Graph, is not
// detected and rolls back to that position.
func (g *Graph) Rollback(cp Checkpoint) {
	if int(cp) < 0 || int(cp) > len(g.journal) {
		panic("graph: rollback to stale checkpoint")
	}
	for i := len(g.journal) - 1; i >= int(cp); i-- {
		rec := g.journal[i]
		switch rec.kind {
		case opAddEdge:
			g.removeEdgeRaw(rec.u, rec.v)
		case opRemoveEdge:
			g.addEdgeRaw(rec.u, rec.v)
		case opRemoveVertex:
			g.live[rec.u] = true
		}
	}
	g.journal = g.journal[:cp]
}
