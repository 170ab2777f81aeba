package heuristic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xosmig/breaking-the-cycle/graph"
)

func TestSolveOnAcyclicGraphReturnsEmpty(t *testing.T) {
	g := graph.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	s := Solve(g, 100*time.Millisecond)
	assert.Empty(t, s)
}

func TestSolveOnTriangleReturnsSingleVertex(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	s := Solve(g, 100*time.Millisecond)
	assert.Len(t, s, 1)
	assert.True(t, feasibleWithout(g, s))
}

func TestSolveLeavesGraphUnmodified(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	before := g.LiveVertices()
	_ = Solve(g, 50*time.Millisecond)
	after := g.LiveVertices()
	assert.Equal(t, before, after)
}

func TestSolveTwoDisjointCycles(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)

	s := Solve(g, 100*time.Millisecond)
	assert.Len(t, s, 2)
	assert.True(t, feasibleWithout(g, s))
}

func TestSolveWithZeroBudgetStillReturnsFeasibleSet(t *testing.T) {
	g := graph.NewGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)

	// A budget that is already expired forces constructivePhase to hit
	// its deadline on the very first stillRunning check, mid-construction,
	// with the residual still cyclic.
	s := Solve(g, -time.Hour)
	assert.True(t, feasibleWithout(g, s))
}

func TestSolveWithAlreadyClosedCancelStillReturnsFeasibleSet(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	cancel := make(chan struct{})
	close(cancel)

	s := SolveUntil(g, time.Hour, cancel)
	assert.True(t, feasibleWithout(g, s))
}
