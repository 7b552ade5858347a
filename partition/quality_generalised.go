// Generalised Modularity: grounded on
// original_source/include/GeneralizedModularityVertexPartition.h and
// original_source/src/leidenalg/GeneralizedModularityVertexPartition.cpp.
package partition

// qualityGeneralisedModularity computes Σ_c [w_in(c) - modNull(c)], where
// modNull(c) sums nullModel[2k][u]*nullModel[2k+1][v] over every pair
// (u,v) of vertices in community c and every factor-row pair k in
// nullModel. Because the pairwise sum factors as
// (Σ_u nullModel[2k][u])·(Σ_v nullModel[2k+1][v]), this is computed in
// O(n) per row pair rather than O(n_c²) per community.
//
// Open Question (see DESIGN.md): Aggregate() (partition/collapse.go)
// forwards p.nullModel to the collapsed partition unchanged rather than
// deriving a collapsed null model indexed by community — reproducing
// original_source's own create(graph, membership, collapsed_communities),
// which computes a collapsed_null_model and then discards it in favour of
// the original. This is flagged, not silently corrected.
func qualityGeneralisedModularity(p *Partition) float64 {
	if len(p.nullModel) == 0 {
		return p.wInAll
	}

	sums := make([][]float64, p.numComms)
	for c := range sums {
		sums[c] = make([]float64, len(p.nullModel))
	}
	for v, c := range p.membership {
		for row, factors := range p.nullModel {
			if v < len(factors) {
				sums[c][row] += factors[v]
			}
		}
	}

	numPairs := len(p.nullModel) / 2
	var q float64
	for c := 0; c < p.numComms; c++ {
		var modNull float64
		for k := 0; k < numPairs; k++ {
			modNull += sums[c][2*k] * sums[c][2*k+1]
		}
		q += p.wIn[c] - modNull
	}

	return q
}
