package workload

import (
	"math/rand"
)

// SizeSampler generates job sizes in seconds.
type SizeSampler interface {
	// Sample returns a positive job size.
	Sample(rng *rand.Rand) float64
}

// minSize keeps generated jobs from being empty.
const minSize = 0.001

// ExponentialSampler produces exponentially-distributed job sizes.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return max(rng.ExpFloat64()*s.mean, minSize)
}

// ConstantSampler always returns the same size.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return max(s.value, minSize)
}

// NewSizeSampler creates a SizeSampler for the named distribution.
func NewSizeSampler(dist string, mean float64) SizeSampler {
	if dist == "constant" {
		return &ConstantSampler{value: mean}
	}
	return &ExponentialSampler{mean: mean}
}
