package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveEdge(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	assert.True(t, g.HasEdge(0, 1))
	assert.Equal(t, []int{1}, g.NeighborsOut(0))
	assert.Equal(t, []int{1}, g.NeighborsIn(2))

	g.RemoveEdge(0, 1)
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 0, g.DegreeOut(0))
}

func TestAddEdgeDuplicateIsNoOp(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	assert.Equal(t, 1, g.DegreeOut(0))
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	g.RemoveVertex(1)
	assert.False(t, g.IsLive(1))
	assert.Equal(t, 0, g.DegreeOut(0))
	assert.Equal(t, 0, g.DegreeIn(2))
}

func TestContractVertexBypassesChain(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	forced := g.ContractVertex(1)
	assert.Empty(t, forced)
	assert.False(t, g.IsLive(1))
	assert.True(t, g.HasEdge(0, 2))
}

func TestContractVertexForcesSelfLoopEndpoint(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	forced := g.ContractVertex(1)
	require.Equal(t, []int{0}, forced)
	assert.False(t, g.HasEdge(0, 0))
}

func TestRollbackRestoresBitIdenticalState(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	cp := g.Checkpoint()

	g.AddEdge(2, 3)
	g.RemoveEdge(0, 1)
	g.RemoveVertex(2)

	g.Rollback(cp)

	assert.True(t, g.IsLive(2))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
}

func TestRollbackStaleCheckpointPanics(t *testing.T) {
	g := NewGraph(2)
	cp := g.Checkpoint()
	g.AddEdge(0, 1)
	stale := g.Checkpoint()
	g.Rollback(cp)

	assert.Panics(t, func() {
		g.Rollback(stale)
	})
}

func TestIsAcyclic(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	assert.True(t, g.IsAcyclic())

	g.AddEdge(2, 0)
	assert.False(t, g.IsAcyclic())
}

func TestOperationOnNonLiveVertexPanics(t *testing.T) {
	g := NewGraph(2)
	g.RemoveVertex(0)
	assert.Panics(t, func() {
		g.AddEdge(0, 1)
	})
}
