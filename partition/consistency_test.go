package partition

import (
	"testing"

	"github.com/katalvlaran/louvain/graphview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertAggregatesMatch compares p's incrementally-maintained aggregates
// against a fresh full recomputation (New from the same membership), the
// property initAdmin and MoveNode must never diverge on.
func assertAggregatesMatch(t *testing.T, p *Partition) {
	t.Helper()
	recomputed, err := New(p.variant, p.gv, p.Membership(), WithResolution(p.resolution), WithNullModel(p.nullModel))
	require.NoError(t, err)

	// MoveNode never removes a community slot, so p may keep trailing slots
	// that have emptied out, while New sizes its slots from the largest id
	// in use. Pad the recomputation so every slot of p is compared, the
	// trailing ones against empty aggregates.
	require.LessOrEqual(t, recomputed.numComms, p.numComms)
	for recomputed.numComms < p.numComms {
		recomputed.growByOne()
	}
	for c := 0; c < p.numComms; c++ {
		assert.InDelta(t, recomputed.csize[c], p.csize[c], 1e-9, "csize[%d]", c)
		assert.InDelta(t, recomputed.wIn[c], p.wIn[c], 1e-9, "wIn[%d]", c)
		assert.InDelta(t, recomputed.wFrom[c], p.wFrom[c], 1e-9, "wFrom[%d]", c)
		assert.InDelta(t, recomputed.wTo[c], p.wTo[c], 1e-9, "wTo[%d]", c)
	}
	assert.InDelta(t, recomputed.wInAll, p.wInAll, 1e-9)
	assert.InDelta(t, recomputed.possibleEdgesAll, p.possibleEdgesAll, 1e-9)
}

func TestMoveNode_IncrementalMatchesFullRecompute_Undirected(t *testing.T) {
	gv := twoTriangles()
	p, err := NewSingleton(Modularity, gv)
	require.NoError(t, err)

	require.NoError(t, p.MoveNode(1, 0))
	assertAggregatesMatch(t, p)

	require.NoError(t, p.MoveNode(2, 0))
	assertAggregatesMatch(t, p)

	require.NoError(t, p.MoveNode(4, 3))
	assertAggregatesMatch(t, p)

	require.NoError(t, p.MoveNode(5, 3))
	assertAggregatesMatch(t, p)

	// Merge the two triangles into one community entirely.
	require.NoError(t, p.MoveNode(3, 0))
	assertAggregatesMatch(t, p)
}

func TestMoveNode_IncrementalMatchesFullRecompute_Directed(t *testing.T) {
	h := edgeListHost{n: 4, directed: true, edges: []graphview.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 0, Weight: 1},
		{From: 0, To: 2, Weight: 0.5},
	}}
	gv, err := graphview.New(h, true)
	require.NoError(t, err)

	p, err := NewSingleton(Modularity, gv)
	require.NoError(t, err)

	require.NoError(t, p.MoveNode(1, 0))
	assertAggregatesMatch(t, p)

	require.NoError(t, p.MoveNode(2, 0))
	assertAggregatesMatch(t, p)

	require.NoError(t, p.MoveNode(3, 0))
	assertAggregatesMatch(t, p)
}

func TestMoveNode_WithSelfLoop(t *testing.T) {
	h := edgeListHost{n: 3, directed: false, edges: []graphview.Edge{
		{From: 0, To: 0, Weight: 2},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	}}
	gv, err := graphview.New(h, true)
	require.NoError(t, err)

	p, err := NewSingleton(Modularity, gv)
	require.NoError(t, err)
	require.NoError(t, p.MoveNode(1, 0))
	assertAggregatesMatch(t, p)
}

func TestMoveNode_NewCommunitySlot(t *testing.T) {
	gv := twoTriangles()
	p, err := New(Modularity, gv, []int{0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	require.NoError(t, p.MoveNode(3, p.NumComms()))
	assert.Equal(t, 2, p.NumComms())
	assertAggregatesMatch(t, p)
}
