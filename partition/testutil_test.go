package partition

import "github.com/katalvlaran/louvain/graphview"

// edgeListHost is a minimal graphview.HostGraph for building test fixtures
// without depending on the core package.
type edgeListHost struct {
	n        int
	directed bool
	edges    []graphview.Edge
}

func (h edgeListHost) VertexCount() int              { return h.n }
func (h edgeListHost) Directed() bool                { return h.directed }
func (h edgeListHost) GraphViewEdges() []graphview.Edge { return h.edges }

// twoTriangles builds an 6-vertex undirected graph: two dense triangles
// {0,1,2} and {3,4,5} joined by a single light bridge edge 2-3, the
// canonical "two obvious communities" fixture.
func twoTriangles() *graphview.GraphView {
	h := edgeListHost{n: 6, directed: false, edges: []graphview.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 0, Weight: 1},
		{From: 3, To: 4, Weight: 1},
		{From: 4, To: 5, Weight: 1},
		{From: 5, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 0.1},
	}}
	gv, err := graphview.New(h, true)
	if err != nil {
		panic(err)
	}

	return gv
}

// allVariants lists every Variant defined in this package, for tests that
// must hold across all of them.
var allVariants = []Variant{
	Modularity, RBConfiguration, RBER, CPM, Significance, Surprise, GeneralisedModularity,
}

func variantName(v Variant) string {
	switch v {
	case Modularity:
		return "Modularity"
	case RBConfiguration:
		return "RBConfiguration"
	case RBER:
		return "RBER"
	case CPM:
		return "CPM"
	case Significance:
		return "Significance"
	case Surprise:
		return "Surprise"
	case GeneralisedModularity:
		return "GeneralisedModularity"
	default:
		return "Unknown"
	}
}
