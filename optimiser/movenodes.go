// MoveNodes: the single-level greedy pass, grounded on Optimiser.cpp's
// move_nodes(partition, consider_comms). Loops passes until improvement
// drops to (or below) Eps, the fraction of vertices moved drops to (or
// below) Delta, or MaxItr passes have run, then renumbers communities once
// before returning.
package optimiser

import (
	"github.com/katalvlaran/louvain/graphview"
	"github.com/katalvlaran/louvain/partition"
	"github.com/katalvlaran/louvain/rng"
)

// MoveNodes runs greedy vertex-move passes over p until convergence,
// mutating p in place (unlike Optimise/OptimiseMultiplex, which return new
// Partition values at each collapsed level). Returns the total improvement
// summed across every pass.
func (o *Optimiser) MoveNodes(p *partition.Partition, src rng.Source) (float64, error) {
	gv := p.GraphView()
	n := gv.VertexCount()

	totalImprov := 0.0
	improv := 2 * o.Eps
	nbMoves := 2 * n
	itr := 0

	for improv > o.Eps && float64(nbMoves) > float64(n)*o.Delta && itr < o.MaxItr {
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
			deg, err := gv.Degree(v, graphview.ModeAll)
			if err != nil {
				return 0, err
			}
			// Isolated vertices have no possible community that improves
			// quality under any Variant's formula (moving contributes no
			// w_in and no boundary weight change), and RandNeighComm has no
			// neighbour to draw from — so they are skipped entirely,
			// resolving the spec's open question about RAND_NEIGH_COMM on
			// an isolated vertex: the case never arises.
			if deg == 0 {
				continue
			}

			vComm, err := p.CommunityOf(v)
			if err != nil {
				return 0, err
			}

			maxComm, maxImprov, err := o.bestCandidateComm(p, v, src)
			if err != nil {
				return 0, err
			}

			if maxComm != vComm {
				improv += maxImprov
				if err := p.MoveNode(v, maxComm); err != nil {
					return 0, err
				}
				nbMoves++
			}
		}

		totalImprov += improv
	}

	p.RenumberCommunities()

	return totalImprov, nil
}

// bestCandidateComm evaluates o.ConsiderComms' candidate set for vertex v
// and returns the community with the strictly largest DiffMove (ties keep
// v's current community, matching Optimiser.cpp's ">" comparison), along
// with that improvement value.
func (o *Optimiser) bestCandidateComm(p *partition.Partition, v int, src rng.Source) (int, float64, error) {
	vComm, err := p.CommunityOf(v)
	if err != nil {
		return 0, 0, err
	}
	maxComm := vComm
	maxImprov := 0.0

	consider := func(c int) error {
		di, err := p.DiffMove(v, c)
		if err != nil {
			return err
		}
		if di > maxImprov {
			maxImprov = di
			maxComm = c
		}

		return nil
	}

	switch o.ConsiderComms {
	case AllComms:
		for c := 0; c < p.NumComms(); c++ {
			if err := consider(c); err != nil {
				return 0, 0, err
			}
		}
	case AllNeighComms:
		for _, c := range neighbourCommunities(p, v) {
			if err := consider(c); err != nil {
				return 0, 0, err
			}
		}
	case RandComm:
		n := p.GraphView().VertexCount()
		randComm, err := p.CommunityOf(src.IntN(n))
		if err != nil {
			return 0, 0, err
		}
		if err := consider(randComm); err != nil {
			return 0, 0, err
		}
	case RandNeighComm:
		neigh, err := p.GraphView().Neighbours(v, graphview.ModeAll)
		if err != nil {
			return 0, 0, err
		}
		if len(neigh) > 0 {
			u := neigh[src.IntN(len(neigh))]
			randComm, err := p.CommunityOf(u)
			if err != nil {
				return 0, 0, err
			}
			if err := consider(randComm); err != nil {
				return 0, 0, err
			}
		}
	}

	return maxComm, maxImprov, nil
}

// neighbourCommunities returns the distinct communities of v's ModeAll
// neighbours, grounded on MutableVertexPartition.cpp's get_neigh_comms.
func neighbourCommunities(p *partition.Partition, v int) []int {
	neigh, err := p.GraphView().Neighbours(v, graphview.ModeAll)
	if err != nil {
		return nil
	}
	seen := make(map[int]struct{}, len(neigh))
	comms := make([]int, 0, len(neigh))
	for _, u := range neigh {
		c, err := p.CommunityOf(u)
		if err != nil {
			continue
		}
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			comms = append(comms, c)
		}
	}

	return comms
}
