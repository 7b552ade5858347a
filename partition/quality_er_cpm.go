// RB-Erdos-Renyi and CPM: grounded on spec.md's formula table (see
// quality_configuration.go's header note on why this is taken from the
// specification rather than a retained .cpp body).
package partition

import "github.com/katalvlaran/louvain/graphview"

// qualityRBER computes Σ_c [w_in(c) - γ·density·E_poss(c)], where density
// is the graph's overall edge density (a single Erdos-Renyi null model
// shared by every community, unlike RB-Configuration's per-community
// degree-based null model).
func qualityRBER(p *Partition, gamma float64) float64 {
	density := p.gv.Density()
	var q float64
	for c := 0; c < p.numComms; c++ {
		ePoss := graphview.PossibleEdgesN(int(p.csize[c]+0.5), p.gv.IsDirected(), p.gv.CorrectSelfLoops())
		q += p.wIn[c] - gamma*density*ePoss
	}

	return q
}

// qualityCPM computes Σ_c [w_in(c) - γ·E_poss(c)] (the Constant Potts
// Model): no density normalisation, so gamma directly sets the edge
// density threshold a community must exceed to be favoured, and negative
// edge weights are handled without special-casing since this formula never
// divides by total weight.
func qualityCPM(p *Partition, gamma float64) float64 {
	var q float64
	for c := 0; c < p.numComms; c++ {
		ePoss := graphview.PossibleEdgesN(int(p.csize[c]+0.5), p.gv.IsDirected(), p.gv.CorrectSelfLoops())
		q += p.wIn[c] - gamma*ePoss
	}

	return q
}
