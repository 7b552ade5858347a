// Construction: New wraps a HostGraph; Collapse aggregates an existing
// GraphView by community membership into a coarser one. Both funnel through
// buildFromEdges, which builds every CSR/degree/strength array in one O(V+E)
// pass and never revisits it — see doc.go for why this view never caches
// lazily the way the view it is grounded on (original_source's GraphHelper)
// does.
package graphview

import (
	"fmt"
	"sort"
)

// New builds a GraphView over hg. Node sizes default to 1.0 and node
// self-weights are derived from any self-loop edges present in hg.
//
// Complexity: O(V + E).
func New(hg HostGraph, correctSelfLoops bool) (*GraphView, error) {
	if hg == nil {
		return nil, fmt.Errorf("%w: nil host graph", ErrInputShape)
	}
	n := hg.VertexCount()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count", ErrInputShape)
	}
	edges := hg.GraphViewEdges()
	nodeSize := make([]float64, n)
	for i := range nodeSize {
		nodeSize[i] = 1.0
	}

	return buildFromEdges(n, hg.Directed(), correctSelfLoops, edges, nodeSize)
}

// buildFromEdges constructs a GraphView from raw edge/node-size data. Every
// vertex/edge index in edges must be in [0, n).
func buildFromEdges(n int, directed, correctSelfLoops bool, edges []Edge, nodeSize []float64) (*GraphView, error) {
	if len(nodeSize) != n {
		return nil, fmt.Errorf("%w: node size slice length %d != %d", ErrInputShape, len(nodeSize), n)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge endpoint out of [0,%d)", ErrIndexOutOfRange, n)
		}
	}

	gv := &GraphView{
		n:                n,
		directed:         directed,
		correctSelfLoops: correctSelfLoops,
		edgeFrom:         make([]int, len(edges)),
		edgeTo:           make([]int, len(edges)),
		edgeWeight:       make([]float64, len(edges)),
		nodeSize:         append([]float64(nil), nodeSize...),
		nodeSelfWeight:   make([]float64, n),
		neighOut:         make([][]int, n),
		neighIn:          make([][]int, n),
		neighAll:         make([][]int, n),
		neighEdgeOut:     make([][]int, n),
		neighEdgeIn:      make([][]int, n),
		neighEdgeAll:     make([][]int, n),
		degreeIn:         make([]int, n),
		degreeOut:        make([]int, n),
		degreeAll:        make([]int, n),
		strengthIn:       make([]float64, n),
		strengthOut:      make([]float64, n),
	}

	for i, e := range edges {
		gv.edgeFrom[i] = e.From
		gv.edgeTo[i] = e.To
		gv.edgeWeight[i] = e.Weight
		gv.totalWeight += e.Weight

		if e.From == e.To {
			gv.nodeSelfWeight[e.From] += e.Weight
			// An undirected self-loop has two incidences on its vertex (it
			// adds 2 to the degree and 2w to the strength), so it is listed
			// twice; a directed one is listed once per list.
			incidences := 1
			if directed {
				gv.degreeOut[e.From]++
				gv.degreeIn[e.From]++
				gv.degreeAll[e.From] += 2
				gv.strengthOut[e.From] += e.Weight
				gv.strengthIn[e.From] += e.Weight
			} else {
				incidences = 2
				gv.degreeIn[e.From] += 2
				gv.strengthIn[e.From] += 2 * e.Weight
			}
			for k := 0; k < incidences; k++ {
				gv.neighOut[e.From] = append(gv.neighOut[e.From], e.To)
				gv.neighEdgeOut[e.From] = append(gv.neighEdgeOut[e.From], i)
				gv.neighIn[e.From] = append(gv.neighIn[e.From], e.From)
				gv.neighEdgeIn[e.From] = append(gv.neighEdgeIn[e.From], i)
				gv.neighAll[e.From] = append(gv.neighAll[e.From], e.To)
				gv.neighEdgeAll[e.From] = append(gv.neighEdgeAll[e.From], i)
			}
			continue
		}

		gv.neighOut[e.From] = append(gv.neighOut[e.From], e.To)
		gv.neighEdgeOut[e.From] = append(gv.neighEdgeOut[e.From], i)
		gv.neighAll[e.From] = append(gv.neighAll[e.From], e.To)
		gv.neighEdgeAll[e.From] = append(gv.neighEdgeAll[e.From], i)
		gv.neighAll[e.To] = append(gv.neighAll[e.To], e.From)
		gv.neighEdgeAll[e.To] = append(gv.neighEdgeAll[e.To], i)

		if directed {
			gv.degreeOut[e.From]++
			gv.degreeAll[e.From]++
			gv.strengthOut[e.From] += e.Weight
			gv.neighIn[e.To] = append(gv.neighIn[e.To], e.From)
			gv.neighEdgeIn[e.To] = append(gv.neighEdgeIn[e.To], i)
			gv.degreeIn[e.To]++
			gv.degreeAll[e.To]++
			gv.strengthIn[e.To] += e.Weight
		} else {
			gv.neighOut[e.To] = append(gv.neighOut[e.To], e.From)
			gv.neighEdgeOut[e.To] = append(gv.neighEdgeOut[e.To], i)
			// Undirected views have no in/out distinction; mirror the same
			// incidences into neighIn so Neighbours/NeighbourEdges behave
			// consistently regardless of which Mode a caller passes (see
			// Degree's dispatch rule: ModeIn or !directed both read the
			// "in" array).
			gv.neighIn[e.From] = append(gv.neighIn[e.From], e.To)
			gv.neighEdgeIn[e.From] = append(gv.neighEdgeIn[e.From], i)
			gv.neighIn[e.To] = append(gv.neighIn[e.To], e.From)
			gv.neighEdgeIn[e.To] = append(gv.neighEdgeIn[e.To], i)
			gv.degreeIn[e.From]++
			gv.degreeIn[e.To]++
			gv.strengthIn[e.From] += e.Weight
			gv.strengthIn[e.To] += e.Weight
		}
	}

	for _, s := range gv.nodeSize {
		gv.totalSize += s
	}

	return gv, nil
}

// Collapse aggregates gv's edges by community membership into a coarser
// GraphView. membership[v] must be in [0, numComms) for every vertex v.
// Inter-community edge weight sums into a single collapsed edge; all
// intra-community weight (including pre-existing self-loops) becomes a
// self-loop on the collapsed community vertex. Collapsed node sizes sum the
// sizes of their members.
//
// Grounded on original_source/src/GraphHelper.cpp's collapse_graph, which
// accumulates collapsed_edge_weights[v_comm][u_comm] += w per original edge.
//
// Complexity: O(V + E).
func (gv *GraphView) Collapse(membership []int, numComms int) (*GraphView, error) {
	if len(membership) != gv.n {
		return nil, fmt.Errorf("%w: membership length %d != %d", ErrInputShape, len(membership), gv.n)
	}
	for _, c := range membership {
		if c < 0 || c >= numComms {
			return nil, fmt.Errorf("%w: community id out of [0,%d)", ErrIndexOutOfRange, numComms)
		}
	}

	collapsedSize := make([]float64, numComms)
	for v := 0; v < gv.n; v++ {
		collapsedSize[membership[v]] += gv.nodeSize[v]
	}

	// collapsed[a][b] accumulates weight between community a and b (a<=b for
	// undirected, self keyed at a==b either way).
	type key struct{ a, b int }
	agg := make(map[key]float64)
	for i := range gv.edgeFrom {
		a, b := membership[gv.edgeFrom[i]], membership[gv.edgeTo[i]]
		if !gv.directed && a > b {
			a, b = b, a
		}
		agg[key{a, b}] += gv.edgeWeight[i]
	}

	keys := make([]key, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	edges := make([]Edge, 0, len(keys))
	for _, k := range keys {
		edges = append(edges, Edge{From: k.a, To: k.b, Weight: agg[k]})
	}

	return buildFromEdges(numComms, gv.directed, gv.correctSelfLoops, edges, collapsedSize)
}
