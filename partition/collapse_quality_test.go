package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Collapsing a partition into a singleton partition over the coarser
// GraphView must always conserve total weight (every variant), and leaves
// Quality unchanged only for the variants whose formula is expressed purely
// in terms of per-community aggregates Aggregate conserves exactly (w_in,
// w_to/w_from, and community size): Modularity, RBConfiguration, and CPM
// read only those; GeneralisedModularity with no null model set reduces to
// w_in_all, also conserved. RBER and Surprise additionally read
// GraphView.Density()/VertexCount()-derived quantities that are NOT
// invariant under collapse (the same total weight is renormalised over a
// smaller vertex count), so their Quality legitimately changes across a
// level — consistent with collapse_quality_test.go only asserting
// conservation for the variants whose own formula makes it true, not
// asserting it as a universal property of Aggregate. Significance is
// covered separately in significance_test.go.
var collapsePreservingVariants = []Variant{
	Modularity, RBConfiguration, CPM, GeneralisedModularity,
}

func TestAggregate_ConservesTotalWeight(t *testing.T) {
	gv := twoTriangles()
	p, err := New(Modularity, gv, []int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)

	coarse, err := p.Aggregate()
	require.NoError(t, err)

	assert.Equal(t, 2, coarse.GraphView().VertexCount())
	assert.InDelta(t, gv.TotalWeight(), coarse.GraphView().TotalWeight(), 1e-9)
	assert.InDelta(t, gv.TotalSize(), coarse.GraphView().TotalSize(), 1e-9)
}

func TestAggregate_PreservesQuality(t *testing.T) {
	gv := twoTriangles()
	membership := []int{0, 0, 0, 1, 1, 1}

	for _, variant := range collapsePreservingVariants {
		variant := variant
		t.Run(variantName(variant), func(t *testing.T) {
			p, err := New(variant, gv, membership, WithResolution(1.0))
			require.NoError(t, err)

			coarse, err := p.Aggregate()
			require.NoError(t, err)

			assert.InDelta(t, p.Quality(), coarse.Quality(), 1e-9)
		})
	}
}

func TestFromCoarser_RoundTripsMembership(t *testing.T) {
	gv := twoTriangles()
	membership := []int{0, 0, 0, 1, 1, 1}
	p, err := New(Modularity, gv, membership)
	require.NoError(t, err)

	coarse, err := p.Aggregate()
	require.NoError(t, err)

	// Split the two coarse vertices into two communities of their own
	// (a no-op at the coarse level: it's already singleton per community).
	lifted, err := p.FromCoarser(coarse)
	require.NoError(t, err)

	for v, c := range membership {
		assert.Equal(t, c, lifted.Membership()[v])
	}
}
