// Query accessors over a built GraphView: degree/strength dispatch,
// neighbour/neighbour-edge lookup, density, and possible-edge counts.
// Mode dispatch mirrors original_source/include/GraphHelper.h exactly: for
// an undirected view, ModeIn and "not directed" both resolve to the single
// stored degree/strength array (undirected graphs have no in/out
// distinction), ModeOut/ModeAll only diverge on directed views.
package graphview

import "fmt"

// Degree returns the degree of vertex v under mode. Self-loops count twice
// toward an undirected vertex's degree and toward a directed vertex's
// ModeAll degree, once each toward ModeIn/ModeOut.
func (gv *GraphView) Degree(v int, mode Mode) (int, error) {
	if v < 0 || v >= gv.n {
		return 0, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	switch {
	case mode == ModeIn || !gv.directed:
		return gv.degreeIn[v], nil
	case mode == ModeOut:
		return gv.degreeOut[v], nil
	case mode == ModeAll:
		return gv.degreeAll[v], nil
	default:
		return 0, ErrInvalidMode
	}
}

// Strength returns the weighted degree of vertex v under mode. ModeAll is
// undefined for a directed view (strength in leidenalg's own GraphHelper has
// no "all" notion) and returns ErrInvalidMode.
func (gv *GraphView) Strength(v int, mode Mode) (float64, error) {
	if v < 0 || v >= gv.n {
		return 0, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	switch {
	case mode == ModeIn || !gv.directed:
		return gv.strengthIn[v], nil
	case mode == ModeOut:
		return gv.strengthOut[v], nil
	default:
		return 0, ErrInvalidMode
	}
}

// Neighbours returns the neighbour vertex indices of v under mode, one
// entry per incidence, in the same order as NeighbourEdges (an undirected
// self-loop contributes v twice to each mode's list, a directed self-loop
// once to each).
func (gv *GraphView) Neighbours(v int, mode Mode) ([]int, error) {
	list, err := gv.neighListFor(v, mode)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// NeighbourEdges returns the edge indices incident to v under mode, in the
// same order as Neighbours(v, mode).
func (gv *GraphView) NeighbourEdges(v int, mode Mode) ([]int, error) {
	if v < 0 || v >= gv.n {
		return nil, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	switch mode {
	case ModeIn:
		return gv.neighEdgeIn[v], nil
	case ModeOut:
		return gv.neighEdgeOut[v], nil
	case ModeAll:
		return gv.neighEdgeAll[v], nil
	default:
		return nil, ErrInvalidMode
	}
}

func (gv *GraphView) neighListFor(v int, mode Mode) ([]int, error) {
	if v < 0 || v >= gv.n {
		return nil, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}
	switch mode {
	case ModeIn:
		return gv.neighIn[v], nil
	case ModeOut:
		return gv.neighOut[v], nil
	case ModeAll:
		return gv.neighAll[v], nil
	default:
		return nil, ErrInvalidMode
	}
}

// EdgeWeight returns the weight of edge e.
func (gv *GraphView) EdgeWeight(e int) (float64, error) {
	if e < 0 || e >= len(gv.edgeFrom) {
		return 0, fmt.Errorf("%w: edge %d", ErrIndexOutOfRange, e)
	}

	return gv.edgeWeight[e], nil
}

// EdgeEndpoints returns the (from, to) vertex indices of edge e.
func (gv *GraphView) EdgeEndpoints(e int) (from, to int, err error) {
	if e < 0 || e >= len(gv.edgeFrom) {
		return 0, 0, fmt.Errorf("%w: edge %d", ErrIndexOutOfRange, e)
	}

	return gv.edgeFrom[e], gv.edgeTo[e], nil
}

// NodeSize returns the size of vertex v (the number of original vertices it
// represents; 1.0 for an uncollapsed GraphView).
func (gv *GraphView) NodeSize(v int) (float64, error) {
	if v < 0 || v >= gv.n {
		return 0, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}

	return gv.nodeSize[v], nil
}

// NodeSelfWeight returns the self-loop weight of vertex v (0 if it has no
// self-loop; the intra-community weight for a vertex produced by Collapse).
func (gv *GraphView) NodeSelfWeight(v int) (float64, error) {
	if v < 0 || v >= gv.n {
		return 0, fmt.Errorf("%w: vertex %d", ErrIndexOutOfRange, v)
	}

	return gv.nodeSelfWeight[v], nil
}

// Density returns total_weight normalised by the number of possible edges,
// doubled for an undirected view (each undirected edge is "worth two"
// directed-edge-slots in the normaliser).
//
// Grounded on original_source/src/GraphHelper.cpp's init_admin: normalise =
// n² if correct_self_loops else n(n-1); density = w/normalise if directed
// else 2w/normalise.
func (gv *GraphView) Density() float64 {
	var normalise float64
	if gv.correctSelfLoops {
		normalise = float64(gv.n) * float64(gv.n)
	} else {
		normalise = float64(gv.n) * float64(gv.n-1)
	}
	if normalise == 0 {
		return 0
	}
	if gv.directed {
		return gv.totalWeight / normalise
	}

	return 2 * gv.totalWeight / normalise
}

// PossibleEdges returns the number of possible edges among all n vertices of
// this view, N = n²/(2−directed) when CorrectSelfLoops is set (the
// aggregate figure move_node's incremental bookkeeping maintains exactly;
// see DESIGN.md for why this implementation uses this form rather than
// original_source's public possible_edges(n) accessor), or n(n−1)/(2−directed)
// otherwise.
func (gv *GraphView) PossibleEdges() float64 {
	return PossibleEdgesN(gv.n, gv.directed, gv.correctSelfLoops)
}

// PossibleEdgesN computes the possible-edges normaliser for n vertices
// without requiring a GraphView, so partition's incremental bookkeeping can
// recompute it for an arbitrary community size.
func PossibleEdgesN(n int, directed, correctSelfLoops bool) float64 {
	u := 2.0
	if directed {
		u = 1.0
	}
	if correctSelfLoops {
		return float64(n) * float64(n) / u
	}

	return float64(n) * float64(n-1) / u
}
