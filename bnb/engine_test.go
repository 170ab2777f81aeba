package bnb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/graph"
)

func TestSolveSCCOnAcyclicGraphFindsEmptySet(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	s, optimal := SolveSCC(g, 4, time.Now().Add(time.Second))
	assert.True(t, optimal)
	assert.Empty(t, s)
}

func TestSolveSCCOnTriangleFindsOneVertex(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	s, optimal := SolveSCC(g, 3, time.Now().Add(time.Second))
	require.True(t, optimal)
	require.Len(t, s, 1)
	assertFeasible(t, g, s)
}

func TestSolveSCCOnTwoCycleFindsOneVertex(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	s, optimal := SolveSCC(g, 2, time.Now().Add(time.Second))
	require.True(t, optimal)
	require.Len(t, s, 1)
	assertFeasible(t, g, s)
}

func TestSolveSCCDoesNotModifyGraph(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	before := g.LiveVertices()
	_, _ = SolveSCC(g, 4, time.Now().Add(time.Second))
	after := g.LiveVertices()
	assert.Equal(t, before, after)
}

// A 4-clique-like digraph (every ordered pair connected) needs n-1
// vertices removed to become acyclic; verify bnb matches that optimum
// exactly on a small, known instance.
func TestSolveSCCOnCompleteDigraphMatchesKnownOptimum(t *testing.T) {
	n := 4
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}

	s, optimal := SolveSCC(g, n, time.Now().Add(2*time.Second))
	require.True(t, optimal)
	require.Len(t, s, n-1)
	assertFeasible(t, g, s)
}

// When ub already equals the true optimum, SolveSCC must not report a
// strictly smaller S, and should prove optimality rather than time out.
func TestSolveSCCWithTightUBReturnsNilButOptimal(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	s, optimal := SolveSCC(g, 1, time.Now().Add(time.Second))
	assert.True(t, optimal)
	assert.Nil(t, s)
}

func TestSolveSCCRespectsDeadline(t *testing.T) {
	n := 40
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}

	s, optimal := SolveSCC(g, n, time.Now().Add(time.Nanosecond))
	assert.False(t, optimal)
	if s != nil {
		assertFeasible(t, g, s)
	}
}

func assertFeasible(t *testing.T, g *graph.Graph, s []int) {
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
