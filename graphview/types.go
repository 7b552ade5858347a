// Package graphview: core types.
//
// Errors:
//
//	ErrInputShape      - mismatched slice lengths or invalid vertex count.
//	ErrIndexOutOfRange - a vertex or edge index is out of range.
//	ErrInvalidMode     - a Mode value other than ModeIn/ModeOut/ModeAll.
//	ErrIsolatedNode    - an operation that requires at least one neighbour
//	                      was attempted on a vertex of degree zero.
package graphview

import "errors"

// Sentinel errors for graphview operations.
var (
	ErrInputShape      = errors.New("graphview: input shape invalid")
	ErrIndexOutOfRange = errors.New("graphview: index out of range")
	ErrInvalidMode     = errors.New("graphview: invalid mode")
	ErrIsolatedNode     = errors.New("graphview: node has no neighbours")
)

// Mode selects which edge direction to consider for Degree, Strength,
// Neighbours, and NeighbourEdges. Mirrors igraph's IGRAPH_IN/OUT/ALL.
type Mode int

const (
	// ModeIn considers incoming edges only (meaningless, and treated as
	// ModeAll's undirected equivalent, on an undirected graph).
	ModeIn Mode = iota
	// ModeOut considers outgoing edges only.
	ModeOut
	// ModeAll considers edges in either direction.
	ModeAll
)

// Edge is a host-graph edge expressed in dense 0..n-1 vertex indices, the
// shape GraphView consumes to build its CSR adjacency.
type Edge struct {
	From, To int
	Weight   float64
}

// HostGraph is the minimal contract a graph data structure must satisfy to
// be wrapped by New. core.Graph implements it via core.Graph.GraphViewEdges.
type HostGraph interface {
	VertexCount() int
	Directed() bool
	GraphViewEdges() []Edge
}

// GraphView is an immutable, precomputed view over a weighted graph.
//
// All fields are built once, in New or Collapse, and never mutated
// afterward — a GraphView is safe to read concurrently from many
// goroutines without locking.
type GraphView struct {
	n                int
	directed         bool
	correctSelfLoops bool

	edgeFrom   []int
	edgeTo     []int
	edgeWeight []float64

	nodeSize       []float64
	nodeSelfWeight []float64

	// CSR-style adjacency: neigh{Mode}[v] lists neighbour vertex indices of
	// v under Mode; neighEdge{Mode}[v] lists the corresponding edge indices
	// (self-loops and parallel edges appear once per incidence).
	neighOut, neighIn, neighAll       [][]int
	neighEdgeOut, neighEdgeIn, neighEdgeAll [][]int

	degreeIn, degreeOut, degreeAll    []int
	strengthIn, strengthOut, strengthAll []float64

	totalWeight float64
	totalSize   float64
}

// VertexCount returns the number of vertices.
func (gv *GraphView) VertexCount() int { return gv.n }

// EdgeCount returns the number of distinct edges (a collapsed self-loop or
// a parallel edge each count once here).
func (gv *GraphView) EdgeCount() int { return len(gv.edgeFrom) }

// IsDirected reports whether the view treats edges as directed.
func (gv *GraphView) IsDirected() bool { return gv.directed }

// CorrectSelfLoops reports whether density/possible-edge computations
// account for self-loops (see PossibleEdges).
func (gv *GraphView) CorrectSelfLoops() bool { return gv.correctSelfLoops }

// TotalWeight returns the sum of all edge weights (self-loops included
// once, not doubled).
func (gv *GraphView) TotalWeight() float64 { return gv.totalWeight }

// TotalSize returns the sum of all node sizes.
func (gv *GraphView) TotalSize() float64 { return gv.totalSize }
