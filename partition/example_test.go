package partition_test

import (
	"fmt"

	"github.com/katalvlaran/louvain/graphview"
	"github.com/katalvlaran/louvain/partition"
)

type triangleHost struct{}

func (triangleHost) VertexCount() int { return 3 }
func (triangleHost) Directed() bool   { return false }
func (triangleHost) GraphViewEdges() []graphview.Edge {
	return []graphview.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 1},
	}
}

// ExamplePartition_MoveNode walks a triangle from singleton communities to
// the grand community one merge at a time, printing Modularity at each
// step. A triangle has no cross-cutting cut, so merging everyone together
// is the Modularity optimum (quality 0, the textbook "complete graph has no
// community structure" value).
func ExamplePartition_MoveNode() {
	gv, err := graphview.New(triangleHost{}, false)
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := partition.NewSingleton(partition.Modularity, gv)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("singleton:     %.4f\n", p.Quality())

	if err := p.MoveNode(1, 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("after {0,1}:   %.4f\n", p.Quality())

	if err := p.MoveNode(2, 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("after {0,1,2}: %.4f\n", p.Quality())

	// Output:
	// singleton:     -0.3333
	// after {0,1}:   -0.2222
	// after {0,1,2}: 0.0000
}
