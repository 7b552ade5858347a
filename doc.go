// Package louvain is a multi-level community-detection library: greedy
// local vertex moves interleaved with graph collapse, driven by a
// pluggable quality function.
//
// The library is split across a few small packages, each usable on its
// own:
//
//	core/      — thread-safe in-memory weighted Graph, the host graph type
//	graphview/ — immutable CSR-style view over a host graph, built once
//	partition/ — community assignment plus the seven quality Variants
//	             (Modularity, RBConfiguration, RBER, CPM, Significance,
//	             Surprise, GeneralisedModularity) and their incremental
//	             bookkeeping
//	optimiser/ — the greedy move/collapse/lift loop, single-layer and
//	             multiplex
//	rng/       — an injected randomness source, never process-global state
//
// A typical single-layer run builds a core.Graph, wraps it in a
// graphview.GraphView, seeds a singleton partition.Partition under the
// desired Variant, and hands it to optimiser.New().Optimise:
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b", 1.0)
//	gv, _ := graphview.New(g, false)
//	p, _ := partition.NewSingleton(partition.Modularity, gv)
//	final, quality, _ := optimiser.New().Optimise(p, rng.New(0))
//
// See cmd/louvain for a command-line front end over CSV edge lists.
package louvain
