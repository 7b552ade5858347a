package optimiser_test

import (
	"fmt"

	"github.com/katalvlaran/louvain/graphview"
	"github.com/katalvlaran/louvain/optimiser"
	"github.com/katalvlaran/louvain/partition"
	"github.com/katalvlaran/louvain/rng"
)

type completeHost struct {
	n     int
	edges []graphview.Edge
}

func (h completeHost) VertexCount() int                  { return h.n }
func (h completeHost) Directed() bool                    { return false }
func (h completeHost) GraphViewEdges() []graphview.Edge { return h.edges }

func newCompleteGraph(n int) completeHost {
	var edges []graphview.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graphview.Edge{From: i, To: j, Weight: 1})
		}
	}

	return completeHost{n: n, edges: edges}
}

// ExampleOptimiser_Optimise finds the Modularity optimum of a complete
// graph: every vertex in one community, with quality exactly 0 — the
// textbook result that a clique has no internal community structure to
// find.
func ExampleOptimiser_Optimise() {
	gv, err := graphview.New(newCompleteGraph(5), false)
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := partition.NewSingleton(partition.Modularity, gv)
	if err != nil {
		fmt.Println(err)
		return
	}

	final, quality, err := optimiser.New().Optimise(p, rng.New(0))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("communities: %d\n", final.NumComms())
	fmt.Printf("quality:     %.4f\n", quality)

	// Output:
	// communities: 1
	// quality:     0.0000
}
