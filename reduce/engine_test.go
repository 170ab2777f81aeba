package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xosmig/breaking-the-cycle/graph"
)

func TestSelfLoopForcesVertex(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)

	res := NewEngine(g).ReduceToFixpoint(FAST)
	assert.Equal(t, []int{0}, res.ForcedIntoS)
}

func TestSinkSourceContractsNoCycleVertices(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1) // 0 is a source, never on a cycle
	g.AddEdge(1, 2) // 2 is a sink

	res := NewEngine(g).ReduceToFixpoint(FAST)
	assert.Empty(t, res.ForcedIntoS)
	assert.ElementsMatch(t, []int{0, 1, 2}, res.Contracted)
}

func TestCoreContractsChainLink(t *testing.T) {
	g := graph.NewGraph(4)
	// 0 -> 1 -> 2 -> 0 (a 3-cycle) plus an out-only tail from 2.
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	res := NewEngine(g).ReduceToFixpoint(FULL)
	// CORE contracts 0 (in- and out-degree 1), adding 2->1; contracting 1
	// then closes a self-loop at 2, which CORE forces into S. The tail
	// vertex 3 is left a sink and contracted. Exactly one vertex must end
	// up forced.
	assert.Len(t, res.ForcedIntoS, 1)
}

func TestDoubleEdgeForcesTwoCycleHub(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(0, 2)
	g.AddEdge(2, 0)

	res := NewEngine(g).ReduceToFixpoint(FULL)
	assert.Contains(t, res.ForcedIntoS, 0)
}

func TestTwinForcesFlowerHub(t *testing.T) {
	g := graph.NewGraph(4)
	for _, w := range []int{1, 2, 3} {
		g.AddEdge(0, w)
		g.AddEdge(w, 0)
	}

	res := NewEngine(g).ReduceToFixpoint(FULL)
	assert.Contains(t, res.ForcedIntoS, 0)
}

func TestDomeRemovesRedundantEdge(t *testing.T) {
	g := graph.NewGraph(3)
	// 0->1, 0->2, 1->2: edge (0,2) is dominated because N_out(2)=∅ ⊆
	// N_out(0)∪{0}; removing it must not affect acyclicity since this
	// graph is already a DAG. Vertex 0 is a source, so a fixpoint run
	// would contract it by SINK/SOURCE before DOME is tried; the rule is
	// applied directly instead.
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	e := NewEngine(g)
	var res Result
	assert.True(t, e.applyDome(0, &res))
	assert.False(t, g.HasEdge(0, 2))
	assert.True(t, g.IsAcyclic())
}

func TestReduceToFixpointNeverLeavesSelfLoop(t *testing.T) {
	g := graph.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 3)
	g.AddEdge(4, 4)

	res := NewEngine(g).ReduceToFixpoint(FULL)
	assert.Contains(t, res.ForcedIntoS, 3)
	assert.Contains(t, res.ForcedIntoS, 4)
	for v := 0; v < g.N(); v++ {
		if g.IsLive(v) {
			assert.False(t, g.HasEdge(v, v))
		}
	}
}

func TestCrownBudgetOption(t *testing.T) {
	g := graph.NewGraph(1)
	e := NewEngine(g, WithCrownBudget(2))
	assert.Equal(t, 2, e.crownBudget)

	e2 := NewEngine(g, WithCrownBudget(0))
	assert.Equal(t, DefaultCrownBudget, e2.crownBudget)
}
