// Surprise: grounded on original_source/include/SurpriseVertexPartition.h
// and original_source/src/SurpriseVertexPartition.cpp's quality().
package partition

import "github.com/katalvlaran/louvain/graphview"

// qualitySurprise computes m·KL(mc/m, nc2/n2), where mc is the total
// internal weight summed across every community (p.TotalWeightInAllComms),
// m is the graph's total weight, nc2 is the total possible-edges summed
// across every community (p.TotalPossibleEdgesInAllComms), and n2 is the
// whole-graph possible-edges count. Unlike Significance, Surprise's
// quality is a single KL term over graph-wide sums, not a per-community
// sum of KL terms.
func qualitySurprise(p *Partition) float64 {
	m := p.gv.TotalWeight()
	if m == 0 {
		return 0
	}
	n2 := graphview.PossibleEdgesN(p.gv.VertexCount(), p.gv.IsDirected(), p.gv.CorrectSelfLoops())
	if n2 == 0 {
		return 0
	}
	mc := p.wInAll
	nc2 := p.possibleEdgesAll

	return m * KL(mc/m, nc2/n2)
}
