// Construction and full-recompute bookkeeping, grounded on
// original_source/src/MutableVertexPartition.cpp's init_admin: for every
// vertex v, its OUT-incident edges are visited once each (on an undirected
// view this means every physical edge is visited twice overall, once from
// each endpoint — ModeOut already returns the full incident list on an
// undirected GraphView, so no separate IN pass is needed here). Each visit
// unconditionally credits v's own community's w_from and the neighbour's
// community's w_to, then separately adds to w_in when the edge turns out
// to be internal. This mirrors move_node's own update exactly (see
// move.go), which is what keeps the two in sync under incremental moves.
package partition

import (
	"fmt"

	"github.com/katalvlaran/louvain/graphview"
)

// New builds a Partition over gv with the given variant and initial
// membership. membership[v] is the community id of vertex v and must lie in
// [0, n). Ids are stored as given and need not be contiguous: NumComms() is
// max(membership)+1, and an id no vertex uses is an empty community slot
// until RenumberCommunities drops it.
func New(variant Variant, gv *graphview.GraphView, membership []int, opts ...Option) (*Partition, error) {
	if gv == nil {
		return nil, fmt.Errorf("%w: nil graph view", ErrInputShape)
	}
	if len(membership) != gv.VertexCount() {
		return nil, fmt.Errorf("%w: membership length %d != vertex count %d", ErrInputShape, len(membership), gv.VertexCount())
	}

	numComms := 0
	for v, c := range membership {
		if c < 0 || c >= len(membership) {
			return nil, fmt.Errorf("%w: vertex %d has community %d outside [0,%d)", ErrIndexOutOfRange, v, c, len(membership))
		}
		if c >= numComms {
			numComms = c + 1
		}
	}
	p := &Partition{
		gv:         gv,
		variant:    variant,
		resolution: 1.0,
		membership: append([]int(nil), membership...),
		numComms:   numComms,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.initAdmin()

	return p, nil
}

// NewSingleton builds a Partition with every vertex in its own community —
// the starting point of move_nodes at the finest level.
func NewSingleton(variant Variant, gv *graphview.GraphView, opts ...Option) (*Partition, error) {
	membership := make([]int, gv.VertexCount())
	for v := range membership {
		membership[v] = v
	}

	return New(variant, gv, membership, opts...)
}

// densify remaps arbitrary community labels to 0..k-1 by order of first
// appearance, so v is deterministic for identical input regardless of the
// caller's original label choice.
func densify(membership []int) ([]int, int) {
	remap := make(map[int]int)
	out := make([]int, len(membership))
	next := 0
	for i, c := range membership {
		id, ok := remap[c]
		if !ok {
			id = next
			remap[c] = id
			next++
		}
		out[i] = id
	}

	return out, next
}

// initAdmin fully recomputes every aggregate from scratch: membership sets,
// csize, wIn/wFrom/wTo, wInAll, possibleEdgesAll.
func (p *Partition) initAdmin() {
	gv := p.gv
	n := gv.VertexCount()

	p.members = make([]map[int]struct{}, p.numComms)
	for c := range p.members {
		p.members[c] = make(map[int]struct{})
	}
	p.csize = make([]float64, p.numComms)
	p.wIn = make([]float64, p.numComms)
	p.wFrom = make([]float64, p.numComms)
	p.wTo = make([]float64, p.numComms)
	p.wInAll = 0
	p.possibleEdgesAll = 0

	for v := 0; v < n; v++ {
		c := p.membership[v]
		p.members[c][v] = struct{}{}
		size, _ := gv.NodeSize(v)
		p.csize[c] += size
	}

	directed := gv.IsDirected()
	for v := 0; v < n; v++ {
		vComm := p.membership[v]
		neigh, _ := gv.Neighbours(v, graphview.ModeOut)
		edges, _ := gv.NeighbourEdges(v, graphview.ModeOut)
		for i, u := range neigh {
			w, _ := gv.EdgeWeight(edges[i])
			uComm := p.membership[u]

			// w_from[c] is c's total out-strength and w_to[c] its total
			// in-strength, credited for every edge regardless of whether
			// it is internal to a community — see move.go's MoveNode for
			// why this unconditional convention is the one that survives
			// incremental updates.
			p.wFrom[vComm] += w
			p.wTo[uComm] += w

			if vComm == uComm {
				internal := w
				if !directed {
					internal /= 2.0
				}
				p.wIn[vComm] += internal
				p.wInAll += internal
			}
		}
	}

	for c := 0; c < p.numComms; c++ {
		p.possibleEdgesAll += graphview.PossibleEdgesN(int(p.csize[c]+0.5), directed, gv.CorrectSelfLoops())
	}
}

// TotalWeightInComm returns w_in[c], the internal weight of community c.
func (p *Partition) TotalWeightInComm(c int) (float64, error) {
	if c < 0 || c >= p.numComms {
		return 0, ErrIndexOutOfRange
	}

	return p.wIn[c], nil
}

// TotalWeightFromComm returns w_from[c], the total weight of edges whose
// tail (source) lies in community c — c's out-strength, including edges
// internal to c.
func (p *Partition) TotalWeightFromComm(c int) (float64, error) {
	if c < 0 || c >= p.numComms {
		return 0, ErrIndexOutOfRange
	}

	return p.wFrom[c], nil
}

// TotalWeightToComm returns w_to[c], the total weight of edges whose head
// (destination) lies in community c — c's in-strength, including edges
// internal to c.
func (p *Partition) TotalWeightToComm(c int) (float64, error) {
	if c < 0 || c >= p.numComms {
		return 0, ErrIndexOutOfRange
	}

	return p.wTo[c], nil
}

// TotalWeightInAllComms returns the sum of internal weight across every
// community.
func (p *Partition) TotalWeightInAllComms() float64 { return p.wInAll }

// TotalPossibleEdgesInAllComms returns the sum, across every community, of
// the number of possible edges within that community.
func (p *Partition) TotalPossibleEdgesInAllComms() float64 { return p.possibleEdgesAll }
