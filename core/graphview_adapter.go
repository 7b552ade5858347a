package core

import "github.com/katalvlaran/louvain/graphview"

// GraphViewEdges implements graphview.HostGraph: every edge in the graph,
// expressed in the dense 0..n-1 vertex indices graphview.New consumes.
//
// Complexity: O(E).
func (g *Graph) GraphViewEdges() []graphview.Edge {
	edges := g.Edges()
	out := make([]graphview.Edge, 0, len(edges))
	for _, e := range edges {
		from, _ := g.VertexIndex(e.From)
		to, _ := g.VertexIndex(e.To)
		out = append(out, graphview.Edge{From: from, To: to, Weight: e.Weight})
	}

	return out
}
