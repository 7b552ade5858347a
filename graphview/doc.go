// Package graphview provides GraphView, an immutable, precomputed view over
// a weighted host graph: degrees, strengths, density, and CSR-style
// neighbour/neighbour-edge adjacency in all three igraph-style modes
// (in, out, all).
//
// GraphView never mutates and is never mutated: all adjacency is computed
// once at construction (New or Collapse), never cached-and-invalidated on
// demand. This trades a little up-front work for a GraphView that is safe
// to share across goroutines without locking and that never pays a cache
// miss in the middle of a hot move_node loop.
//
// Collapse aggregates a GraphView's edges by community membership into a
// coarser GraphView: inter-community edges sum into a single collapsed
// edge, intra-community weight becomes a self-loop on the collapsed
// vertex. A collapsed GraphView carries no reference back to the graph it
// was collapsed from — it is a new, independent, immutable view, exactly
// like every other GraphView.
package graphview
