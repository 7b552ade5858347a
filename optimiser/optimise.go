// Optimise: the multi-level loop, grounded on Optimiser.cpp's
// optimize_partition(MutableVertexPartition*): run MoveNodes, and as long as
// it reports improvement above Eps, collapse the current partition onto a
// coarser GraphView, run MoveNodes there too, and lift the coarser result
// back down before repeating. Unlike the original's in-place
// from_coarser_partition, Partition.FromCoarser returns a new value, so each
// level of this loop produces a new *partition.Partition rather than
// mutating the caller's.
package optimiser

import (
	"github.com/katalvlaran/louvain/partition"
	"github.com/katalvlaran/louvain/rng"
)

// Optimise runs the full multi-level Louvain loop starting from p (typically
// a singleton partition) and returns the final, renumbered partition
// together with its Quality.
func (o *Optimiser) Optimise(p *partition.Partition, src rng.Source) (*partition.Partition, float64, error) {
	current := p
	improv, err := o.MoveNodes(current, src)
	if err != nil {
		return nil, 0, err
	}

	for improv > o.Eps {
		coarse, err := current.Aggregate()
		if err != nil {
			return nil, 0, err
		}
		coarseImprov, err := o.MoveNodes(coarse, src)
		if err != nil {
			return nil, 0, err
		}
		lifted, err := current.FromCoarser(coarse)
		if err != nil {
			return nil, 0, err
		}
		current = lifted
		improv = coarseImprov
	}

	current.RenumberCommunities()

	return current, current.Quality(), nil
}
