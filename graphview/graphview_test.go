package graphview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeListHost is a trivial HostGraph for testing without depending on core.
type edgeListHost struct {
	n        int
	directed bool
	edges    []Edge
}

func (h edgeListHost) VertexCount() int        { return h.n }
func (h edgeListHost) Directed() bool          { return h.directed }
func (h edgeListHost) GraphViewEdges() []Edge   { return h.edges }

func TestNew_UndirectedTriangleDegreesAndStrength(t *testing.T) {
	h := edgeListHost{n: 3, edges: []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 0, Weight: 3},
	}}
	gv, err := New(h, false)
	require.NoError(t, err)
	assert.Equal(t, 3, gv.VertexCount())
	assert.Equal(t, 3, gv.EdgeCount())
	assert.Equal(t, 6.0, gv.TotalWeight())

	for v := 0; v < 3; v++ {
		d, err := gv.Degree(v, ModeAll)
		require.NoError(t, err)
		assert.Equal(t, 2, d)
	}

	s, err := gv.Strength(0, ModeAll)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s) // edges 0-1 (1) + 2-0 (3)
}

func TestNew_SelfLoopCountsTwiceUndirected(t *testing.T) {
	h := edgeListHost{n: 1, edges: []Edge{{From: 0, To: 0, Weight: 5}}}
	gv, err := New(h, true)
	require.NoError(t, err)
	d, err := gv.Degree(0, ModeAll)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	sw, err := gv.NodeSelfWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, sw)
}

func TestCollapse_ConservesTotalWeight(t *testing.T) {
	h := edgeListHost{n: 4, edges: []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 0, Weight: 4},
	}}
	gv, err := New(h, true)
	require.NoError(t, err)

	membership := []int{0, 0, 1, 1}
	collapsed, err := gv.Collapse(membership, 2)
	require.NoError(t, err)
	assert.Equal(t, gv.TotalWeight(), collapsed.TotalWeight())
	assert.Equal(t, gv.TotalSize(), collapsed.TotalSize())
	assert.Equal(t, 2, collapsed.VertexCount())
}

func TestDensity_CompleteGraphUndirected(t *testing.T) {
	// K4 unweighted has density 1.
	edges := []Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 0, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1},
	}
	h := edgeListHost{n: 4, edges: edges}
	gv, err := New(h, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, gv.Density(), 1e-9)
}

func TestPossibleEdgesN_MatchesFormula(t *testing.T) {
	assert.Equal(t, 8.0, PossibleEdgesN(4, false, true))   // n^2/2
	assert.Equal(t, 6.0, PossibleEdgesN(4, false, false))  // n(n-1)/2
	assert.Equal(t, 16.0, PossibleEdgesN(4, true, true))   // n^2/1
}

func TestDegree_InvalidModeAndRange(t *testing.T) {
	h := edgeListHost{n: 1}
	gv, err := New(h, false)
	require.NoError(t, err)
	_, err = gv.Degree(5, ModeAll)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Mode is only checked on a directed view; an undirected one reads its
	// single degree array for every mode.
	dgv, err := New(edgeListHost{n: 1, directed: true}, false)
	require.NoError(t, err)
	_, err = dgv.Degree(0, Mode(99))
	assert.ErrorIs(t, err, ErrInvalidMode)
}
