// Package optimiser drives Partition.MoveNode/DiffMove across the
// collapse/lift multi-level loop, grounded on original_source/src/Optimiser.cpp.
//
// Errors:
//
//	ErrNoLayers          - OptimiseMultiplex called with zero partitions.
//	ErrLayerSizeMismatch - layer_weights length, or a layer's vertex count,
//	                       does not match the others.
package optimiser

import "errors"

var (
	ErrNoLayers          = errors.New("optimiser: no layers provided")
	ErrLayerSizeMismatch = errors.New("optimiser: layer sizes do not match")
)

// ConsiderComms selects which candidate communities move_nodes evaluates a
// vertex against. Values match Optimiser.h's static consts exactly so a
// caller porting tuning parameters from the original library needs no
// translation table.
type ConsiderComms int

const (
	// AllComms evaluates every existing community, O(NumComms()) per vertex.
	AllComms ConsiderComms = iota + 1
	// AllNeighComms evaluates only the communities of v's neighbours — the
	// default, and the only mode that scales sublinearly in NumComms().
	AllNeighComms
	// RandComm evaluates a single community chosen uniformly at random
	// among all vertices' current communities.
	RandComm
	// RandNeighComm evaluates a single community chosen uniformly at random
	// among v's neighbours' current communities.
	RandNeighComm
)

// Optimiser holds the stopping-criteria and candidate-selection parameters
// for MoveNodes/Optimise/OptimiseMultiplex.
//
// Grounded on Optimiser.h's fields and Optimiser.cpp's no-arg constructor for
// the defaults New returns.
type Optimiser struct {
	// Eps: a move_nodes loop stops once its improvement for a full pass
	// falls at or below this threshold.
	Eps float64
	// Delta: a move_nodes loop stops once the fraction of vertices moved in
	// a pass falls at or below this threshold.
	Delta float64
	// MaxItr caps the number of passes move_nodes performs regardless of
	// Eps/Delta.
	MaxItr int
	// RandomOrder, when true, shuffles vertex visitation order every pass
	// via the injected rng.Source rather than visiting 0,1,2,....
	RandomOrder bool
	// ConsiderComms selects the candidate-community strategy.
	ConsiderComms ConsiderComms
}

// New returns an Optimiser with original_source's documented defaults:
// eps=1e-5, delta=1e-2, max_itr=10000, random_order=true,
// consider_comms=ALL_NEIGH_COMMS.
func New() *Optimiser {
	return &Optimiser{
		Eps:           1e-5,
		Delta:         1e-2,
		MaxItr:        10000,
		RandomOrder:   true,
		ConsiderComms: AllNeighComms,
	}
}
