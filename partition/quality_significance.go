// Significance: grounded on
// original_source/include/SignificanceVertexPartition.h and
// original_source/src/SignificanceVertexPartition.cpp's quality().
package partition

import "github.com/katalvlaran/louvain/graphview"

// qualitySignificance computes Σ_c KL(p_c, p)·n_c·(n_c-1) over every
// community with n_c>1, where p_c = w_in(c)/E_poss(c) is community c's own
// edge density and p is the graph's overall density.
//
// Note (documented in DESIGN.md): Significance's quality is not preserved
// across Collapse. Community sizes and internal weights carry over exactly,
// but p is GraphView.Density(), which is normalised by the view's vertex
// count; that count shrinks under collapse while total weight does not, so
// a collapsed partition's Significance generally differs from the
// finer-level value (RBER and Surprise read density-style terms as well).
func qualitySignificance(p *Partition) float64 {
	density := p.gv.Density()
	var s float64
	for c := 0; c < p.numComms; c++ {
		nc := p.csize[c]
		if nc <= 1 {
			continue
		}
		ePoss := graphview.PossibleEdgesN(int(nc+0.5), p.gv.IsDirected(), p.gv.CorrectSelfLoops())
		if ePoss == 0 {
			continue
		}
		pc := p.wIn[c] / ePoss
		s += KL(pc, density) * nc * (nc - 1)
	}

	return s
}
