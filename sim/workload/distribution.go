package workload

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ServiceSampler draws landing durations from a ServiceSpec.
// Bound to one RNG; not safe for concurrent use.
type ServiceSampler struct {
	spec    ServiceSpec
	buckets distuv.Categorical
	rng     *rand.Rand
}

// NewServiceSampler creates a sampler drawing from rng. The spec must be valid.
func NewServiceSampler(spec ServiceSpec, rng *rand.Rand) *ServiceSampler {
	return &ServiceSampler{
		spec:    spec,
		buckets: distuv.NewCategorical(spec.Weights, rng),
		rng:     rng,
	}
}

// Sample returns one service duration in seconds.
func (s *ServiceSampler) Sample() int64 {
	bucket := int(s.buckets.Rand())
	lo, hi := s.spec.Bounds(bucket)
	return lo + s.rng.Int64N(hi-lo)
}
