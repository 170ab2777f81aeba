package driver

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

	d := &Driver{}
	s := d.Solve(g, time.Now().Add(time.Second))
	assert.Empty(t, s)
}

func TestSolveOnTwoDisjointSCCsSolvesBoth(t *testing.T) {
	g := graph.NewGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)

	d := &Driver{}
	s := d.Solve(g, time.Now().Add(2*time.Second))
	assert.Len(t, s, 2)
	assertFeasibleOn(t, g, s)
}

func TestSolveWithSingleWorkerMatchesDefault(t *testing.T) {
	g := graph.NewGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)

	d := &Driver{Workers: 1}
	s := d.Solve(g, time.Now().Add(2*time.Second))
	assert.Len(t, s, 2)
	assertFeasibleOn(t, g, s)
}

func TestSolveDoesNotModifyInputGraph(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	before := g.LiveVertices()
	_ = (&Driver{}).Solve(g, time.Now().Add(time.Second))
	after := g.LiveVertices()
	assert.Equal(t, before, after)
}

func TestNumWorkersClampsToJobCount(t *testing.T) {
	assert.Equal(t, 3, numWorkers(8, 3))
	assert.Equal(t, 1, numWorkers(1, 3))
	assert.GreaterOrEqual(t, numWorkers(0, 0), 1)
}

func assertFeasibleOn(t *testing.T, g *graph.Graph, s []int) {
	t.Helper()
	cp := g.Checkpoint()
	defer g.Rollback(cp)
	for _, v := range s {
		if g.IsLive(v) {
			g.RemoveVertex(v)
		}
	}
	assert.True(t, g.IsAcyclic())
}
