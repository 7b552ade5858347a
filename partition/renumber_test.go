package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenumberCommunities_LargestFirstWithTiebreak(t *testing.T) {
	gv := twoTriangles()
	// Community 2 (just vertex 3) is smallest, community 0 ({0,1,2}) and
	// community 1 ({4}) are size 3 and size 1 respectively; community 3 is
	// {5}. After renumbering, 0 (size 3) must stay first.
	p, err := New(Modularity, gv, []int{0, 0, 0, 2, 1, 3})
	require.NoError(t, err)

	mapping := p.RenumberCommunities()

	assert.Equal(t, 0, mapping[0], "largest community keeps/gets id 0")
	assert.Equal(t, 4, p.NumComms())

	// The mapping must be a bijection onto [0, NumComms()).
	seen := make(map[int]bool)
	for _, newID := range mapping {
		assert.False(t, seen[newID], "duplicate new id %d", newID)
		seen[newID] = true
		assert.True(t, newID >= 0 && newID < p.NumComms())
	}
	assert.Len(t, seen, p.NumComms())
}

func TestRenumberCommunities_DropsEmptyCommunities(t *testing.T) {
	gv := twoTriangles()
	p, err := NewSingleton(Modularity, gv)
	require.NoError(t, err)

	// Merge everything into community 0, leaving 5 singleton slots empty.
	for v := 1; v < 6; v++ {
		require.NoError(t, p.MoveNode(v, 0))
	}

	p.RenumberCommunities()
	assert.Equal(t, 1, p.NumComms())
}

func TestRenumberCommunities_PreservesAggregates(t *testing.T) {
	gv := twoTriangles()
	p, err := New(Modularity, gv, []int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)

	qualityBefore := p.Quality()
	p.RenumberCommunities()
	assert.InDelta(t, qualityBefore, p.Quality(), 1e-9)
}
