package gen

import (
	"math/rand"

	"github.com/goderik01/PACE2018/stpggraph"
)

// WeightFn produces one edge weight, given the Config's RNG. It must be
// deterministic for a fixed RNG state.
type WeightFn func(rng *rand.Rand) stpggraph.Weight

// ConstantWeightFn always returns w. Panics if w < 0, since PACE instances
// carry non-negative weights.
func ConstantWeightFn(w int64) WeightFn {
	if w < 0 {
		panic("gen: ConstantWeightFn(w<0)")
	}
	return func(*rand.Rand) stpggraph.Weight { return stpggraph.Weight(w) }
}

// UniformWeightFn samples uniformly from the closed interval [min, max].
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic("gen: UniformWeightFn: require 0 <= min <= max")
	}
	span := max - min
	return func(rng *rand.Rand) stpggraph.Weight {
		if span == 0 {
			return stpggraph.Weight(min)
		}
		return stpggraph.Weight(min + rng.Int63n(span+1))
	}
}
