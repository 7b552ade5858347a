// RenumberCommunities: grounded on
// original_source/src/MutableVertexPartition.cpp's renumber_communities,
// which sorts communities by descending size (largest first) with the
// original community id as a tiebreak, then remaps membership to the dense
// 0..k-1 range in that order. The result is a bijection between old and new
// community ids restricted to non-empty communities.
package partition

import "sort"

// RenumberCommunities reassigns community ids so that community 0 is the
// largest (by aggregate node size), community 1 the next largest, and so
// on, with ties broken by the original (pre-renumber) community id. Empty
// communities are dropped. Returns the old->new id mapping.
//
// Complexity: O(k log k), k = NumComms().
func (p *Partition) RenumberCommunities() map[int]int {
	type entry struct {
		oldID int
		size  float64
	}
	entries := make([]entry, 0, p.numComms)
	for c := 0; c < p.numComms; c++ {
		if len(p.members[c]) == 0 {
			continue
		}
		entries = append(entries, entry{oldID: c, size: p.csize[c]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].size != entries[j].size {
			return entries[i].size > entries[j].size
		}
		return entries[i].oldID < entries[j].oldID
	})

	mapping := make(map[int]int, len(entries))
	for newID, e := range entries {
		mapping[e.oldID] = newID
	}

	p.applyRenumbering(mapping, len(entries))

	return mapping
}

// RenumberCommunitiesWith applies an externally supplied old->new community
// id mapping (every key present in the current membership must map to a
// value in [0, newNumComms)), used by Optimiser.OptimiseMultiplex to force
// one layer's renumbering onto all other layers sharing the same
// membership.
func (p *Partition) RenumberCommunitiesWith(mapping map[int]int, newNumComms int) {
	p.applyRenumbering(mapping, newNumComms)
}

func (p *Partition) applyRenumbering(mapping map[int]int, newNumComms int) {
	newMembership := make([]int, len(p.membership))
	for v, c := range p.membership {
		newMembership[v] = mapping[c]
	}
	p.membership = newMembership
	p.numComms = newNumComms
	p.initAdmin()
}
