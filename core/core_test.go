package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_IdempotentAndIndexed(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	idx, ok := g.VertexIndex("a")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.AddVertex(""), ErrEmptyVertexID)
}

func TestAddEdge_UndirectedMirrorsAdjacency(t *testing.T) {
	g := NewGraph()
	eid, err := g.AddEdge("a", "b", 2.5)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))

	ns, err := g.Neighbors("b")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, eid, ns[0].ID)
	assert.Equal(t, 2.5, ns[0].Weight)
}

func TestAddEdge_DirectedDoesNotMirror(t *testing.T) {
	g := NewGraph(WithDirected(true))
	_, err := g.AddEdge("a", "b", 1.0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))

	out, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	in, err := g.Neighbors("b")
	require.NoError(t, err)
	assert.Len(t, in, 0)
}

func TestAddEdge_LoopRejectedWithoutWithLoops(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("a", "a", 1.0)
	require.ErrorIs(t, err, ErrLoopNotAllowed)

	g2 := NewGraph(WithLoops())
	eid, err := g2.AddEdge("a", "a", 3.0)
	require.NoError(t, err)
	ns, err := g2.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, eid, ns[0].ID)
}

func TestAddEdge_MultiEdgeRejectedByDefault(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("a", "b", 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 1.0)
	require.ErrorIs(t, err, ErrMultiEdgeNotAllowed)

	g2 := NewGraph(WithMultiEdges())
	_, err = g2.AddEdge("a", "b", 1.0)
	require.NoError(t, err)
	_, err = g2.AddEdge("a", "b", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 2, g2.EdgeCount())
}

func TestVertices_OrderedByInsertionIndex(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"c", "a", "b"}, g.Vertices())
}
