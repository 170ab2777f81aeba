package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMETISParsesTriangle(t *testing.T) {
	input := "3 3 0\n2\n3\n1\n"
	g, err := ReadMETIS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 0))
}

func TestReadMETISSkipsCommentLines(t *testing.T) {
	input := "% this is a comment\n2 1 0\n% another comment\n2\n\n"
	g, err := ReadMETIS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, g.N())
	assert.True(t, g.HasEdge(0, 1))
	assert.Equal(t, 0, g.DegreeOut(1))
}

func TestReadMETISAllowsEmptyAdjacencyLine(t *testing.T) {
	input := "2 0 0\n\n\n"
	g, err := ReadMETIS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, g.DegreeOut(0))
	assert.Equal(t, 0, g.DegreeOut(1))
}

func TestReadMETISEmptyInputIsZeroVertexGraph(t *testing.T) {
	g, err := ReadMETIS(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.N())
}

func TestReadMETISRejectsMalformedHeader(t *testing.T) {
	_, err := ReadMETIS(strings.NewReader("not a header\n"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestReadMETISRejectsOutOfRangeNeighbor(t *testing.T) {
	_, err := ReadMETIS(strings.NewReader("1 1 0\n5\n"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestReadMETISRejectsTruncatedAdjacency(t *testing.T) {
	_, err := ReadMETIS(strings.NewReader("3 0 0\n\n\n"))
	require.Error(t, err)
}

func TestWriteSolutionOrdersAscendingAndConvertsToOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, []int{2, 0, 1}))
	assert.Equal(t, "1\n2\n3\n", buf.String())
}

func TestWriteSolutionOnEmptySetWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestRoundTripThroughReadAndWrite(t *testing.T) {
	input := "4 4 0\n2\n3\n1 4\n\n"
	g, err := ReadMETIS(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, []int{0, 2}))
	assert.Equal(t, "1\n3\n", buf.String())
	assert.True(t, g.HasEdge(2, 3))
}
