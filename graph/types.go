package graph

// opKind enumerates the closed set of mutation records that can appear in
// a Graph's journal. Grounded on lvlath/core's policy of closed sentinel
// sets (core/types.go's error variables) generalized from errors to
// journal entries, per the "tagged union" design note in the spec.
type opKind uint8

const (
	opAddEdge opKind = iota
	opRemoveEdge
	opRemoveVertex
)

// undoRecord is one entry in the mutation journal. For opAddEdge and
// opRemoveEdge, (u,v) is the edge endpoints. For opRemoveVertex, u is the
// vertex that was marked not-live (v is unused).
type undoRecord struct {
	kind opKind
	u, v int
}

// Checkpoint is an opaque handle into the journal. Rollback(cp) restores
// the graph to the state it had when cp was obtained; it is only valid for
// the Graph that produced it, and only while the journal has not already
// been rolled back past it.
type Checkpoint int

// Graph is a mutable directed graph over the dense vertex range [0,N).
// out[v] and in[v] are the live out/in neighbor sets of v; live[v] is
// false once v has been removed (by RemoveVertex or as part of
// ContractVertex). Every mutation is appended to journal so it can be
// undone exactly via Rollback.
type Graph struct {
	n       int
	live    []bool
	out     []map[int]struct{}
	in      []map[int]struct{}
	journal []undoRecord
}

// NewGraph allocates a Graph over vertices [0,n) with no edges. All
// vertices start live.
func NewGraph(n int) *Graph {
	g := &Graph{
		n:    n,
		live: make([]bool, n),
		out:  make([]map[int]struct{}, n),
		in:   make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.live[v] = true
		g.out[v] = make(map[int]struct{})
		g.in[v] = make(map[int]struct{})
	}
	return g
}

// N returns the original vertex count (the dense range size), not the
// number of currently-live vertices.
func (g *Graph) N() int { return g.n }
