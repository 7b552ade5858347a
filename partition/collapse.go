// Aggregate and FromCoarser: the multi-level recursion step. Aggregate
// collapses the current partition's communities into vertices of a coarser
// GraphView and returns a fresh singleton Partition over it (each collapsed
// vertex starts in its own community, mirroring Optimiser.cpp's
// create_collapsed_partition). FromCoarser lifts a partition optimised at
// the coarser level back down onto this level's vertices, grounded on
// MutableVertexPartition.cpp's from_coarser_partition.
package partition

// Aggregate collapses p onto a coarser GraphView, one vertex per current
// community, and returns a new singleton Partition over it with the same
// Variant and options (Resolution, NullModel) as p.
func (p *Partition) Aggregate() (*Partition, error) {
	collapsedGV, err := p.gv.Collapse(p.membership, p.numComms)
	if err != nil {
		return nil, err
	}

	return NewSingleton(p.variant, collapsedGV, p.carryOptions()...)
}

// FromCoarser lifts coarse (a Partition optimised over the GraphView
// p.Aggregate() produced) back onto p's own (finer) GraphView: vertex v's
// new community is coarse's community for v's *old* community index.
func (p *Partition) FromCoarser(coarse *Partition) (*Partition, error) {
	coarseMembership := coarse.Membership()
	fineMembership := make([]int, len(p.membership))
	for v, c := range p.membership {
		fineMembership[v] = coarseMembership[c]
	}

	return New(p.variant, p.gv, fineMembership, p.carryOptions()...)
}

func (p *Partition) carryOptions() []Option {
	opts := []Option{WithResolution(p.resolution)}
	if p.nullModel != nil {
		opts = append(opts, WithNullModel(p.nullModel))
	}

	return opts
}
