// MoveNode: the incremental aggregate update at the heart of the
// optimiser's hot loop, grounded on
// original_source/src/MutableVertexPartition.cpp's move_node. Update order
// matters: possible-edges uses the pre-move community sizes, the
// community-set swap happens next, then a single local double pass over
// v's own OUT and then IN incident edges adjusts wIn/wFrom/wTo, and only
// after that loop does v's membership actually change — so every neighbour
// community lookup during the loop still sees v's pre-move state.
//
// w_from/w_to are updated unconditionally for every incident edge (OUT
// credits w_from, IN credits w_to), independently of whether the edge
// turns out to be internal — mirroring move_node's own independent
// treatment of the two. w_from[c]/w_to[c] track the community's total
// out-/in-strength regardless of destination, a quantity that only ever
// depends on which vertices currently belong to c, so moving v simply
// subtracts v's own incident weight from oldComm and adds it to newComm
// without ever touching a neighbour's community. A convention that instead
// credited only boundary (non-internal) edges would need to react to a
// neighbour's edge flipping internal/boundary as v moves, which MoveNode
// has no way to detect without rescanning every neighbour's own
// neighbours — so that convention cannot be maintained incrementally.
package partition

import (
	"fmt"

	"github.com/katalvlaran/louvain/graphview"
)

// MoveNode moves vertex v from its current community to newComm, updating
// every aggregate exactly (to floating-point precision) as a full
// recomputation would. newComm may equal NumComms() to place v into a new,
// previously unused community slot.
//
// Complexity: O(degree(v)).
func (p *Partition) MoveNode(v, newComm int) error {
	if v < 0 || v >= len(p.membership) {
		return fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	if newComm < 0 || newComm > p.numComms {
		return fmt.Errorf("%w: community %d", ErrIndexOutOfRange, newComm)
	}

	oldComm := p.membership[v]
	if newComm == oldComm {
		return nil
	}
	if newComm == p.numComms {
		p.growByOne()
	}

	gv := p.gv
	directed := gv.IsDirected()
	size, err := gv.NodeSize(v)
	if err != nil {
		return err
	}

	// 1. Possible-edges delta, using pre-move community sizes.
	denom := 2.0
	if directed {
		denom = 1.0
	}
	p.possibleEdgesAll += 2 * size * (p.csize[newComm] - p.csize[oldComm] + size) / denom

	// 2. Community-set swap.
	delete(p.members[oldComm], v)
	p.csize[oldComm] -= size
	p.members[newComm][v] = struct{}{}
	p.csize[newComm] += size

	// 3. Local double pass over v's incident edges.
	for _, mode := range [2]graphview.Mode{graphview.ModeOut, graphview.ModeIn} {
		neigh, err := gv.Neighbours(v, mode)
		if err != nil {
			return err
		}
		edges, err := gv.NeighbourEdges(v, mode)
		if err != nil {
			return err
		}
		for i, u := range neigh {
			w, err := gv.EdgeWeight(edges[i])
			if err != nil {
				return err
			}
			selfLoop := u == v
			uComm := p.membership[u]

			intDenom := 1.0
			if !directed {
				intDenom = 2.0
			}
			if selfLoop {
				intDenom *= 2.0
			}
			internalWeight := w / intDenom

			if mode == graphview.ModeOut {
				p.wFrom[oldComm] -= w
				p.wFrom[newComm] += w
			} else {
				p.wTo[oldComm] -= w
				p.wTo[newComm] += w
			}

			if uComm == oldComm {
				p.wIn[oldComm] -= internalWeight
				p.wInAll -= internalWeight
			}
			if uComm == newComm || selfLoop {
				p.wIn[newComm] += internalWeight
				p.wInAll += internalWeight
			}
		}
	}

	p.membership[v] = newComm

	return nil
}

// growByOne appends an empty community slot at index NumComms().
func (p *Partition) growByOne() {
	p.members = append(p.members, make(map[int]struct{}))
	p.csize = append(p.csize, 0)
	p.wIn = append(p.wIn, 0)
	p.wFrom = append(p.wFrom, 0)
	p.wTo = append(p.wTo, 0)
	p.numComms++
}

// WeightToFromComm returns the total weight of edges between vertex v and
// the members of community c (excluding v's own self-loop, which never
// counts as "to another community"), summed over both directions — the
// quantity every DiffMove implementation needs to evaluate the cost of
// moving v into c.
//
// Grounded on MutableVertexPartition.cpp's weight_vertex_tofrom_comm, which
// delegates to Graph::weight_tofrom_community.
//
// Complexity: O(degree(v)).
func (p *Partition) WeightToFromComm(v, c int) (float64, error) {
	if v < 0 || v >= len(p.membership) {
		return 0, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	if c < 0 || c >= p.numComms {
		return 0, fmt.Errorf("%w: community %d", ErrIndexOutOfRange, c)
	}
	gv := p.gv
	directed := gv.IsDirected()

	var total float64
	for _, mode := range []graphview.Mode{graphview.ModeOut, graphview.ModeIn} {
		neigh, err := gv.Neighbours(v, mode)
		if err != nil {
			return 0, err
		}
		edges, err := gv.NeighbourEdges(v, mode)
		if err != nil {
			return 0, err
		}
		for i, u := range neigh {
			if u == v {
				continue
			}
			if p.membership[u] != c {
				continue
			}
			w, err := gv.EdgeWeight(edges[i])
			if err != nil {
				return 0, err
			}
			factor := 1.0
			if !directed {
				factor = 0.5
			}
			total += w * factor
		}
	}

	return total, nil
}
