package workload

import (
	"fmt"
	"math"
)

// DefaultBucketWidth is the width in seconds of one service-time bucket.
const DefaultBucketWidth int64 = 30

// DefaultServiceWeights is the observed landing-time histogram over eight
// 30-second buckets (counts out of 200 landings).
var DefaultServiceWeights = []float64{16, 33, 61, 41, 25, 10, 8, 6}

// ServiceSpec parameterizes the empirical service-time distribution.
//
// Bucket b covers the integer durations [width*(b+1)+1, width*(b+2)), drawn
// uniformly. Weights need not sum to 1; they are normalized when sampling.
type ServiceSpec struct {
	BucketWidth int64     `yaml:"bucket_width"`
	Weights     []float64 `yaml:"weights"`
}

// DefaultServiceSpec returns the observed landing-time distribution.
func DefaultServiceSpec() ServiceSpec {
	weights := make([]float64, len(DefaultServiceWeights))
	copy(weights, DefaultServiceWeights)
	return ServiceSpec{BucketWidth: DefaultBucketWidth, Weights: weights}
}

// Validate checks that the spec describes a proper distribution.
func (s ServiceSpec) Validate() error {
	if s.BucketWidth < 2 {
		return fmt.Errorf("service bucket_width must be >= 2, got %d", s.BucketWidth)
	}
	if len(s.Weights) == 0 {
		return fmt.Errorf("service weights must have at least one bucket")
	}
	total := 0.0
	for i, w := range s.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("service weight %d must be a finite non-negative number, got %v", i, w)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("service weights must have a positive sum")
	}
	return nil
}

// Bounds returns the half-open duration range [lo, hi) of a bucket.
func (s ServiceSpec) Bounds(bucket int) (lo, hi int64) {
	b := int64(bucket)
	return s.BucketWidth*(b+1) + 1, s.BucketWidth * (b + 2)
}

// Range returns the half-open range covering every bucket with positive weight.
func (s ServiceSpec) Range() (lo, hi int64) {
	first, last := -1, -1
	for i, w := range s.Weights {
		if w > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0
	}
	lo, _ = s.Bounds(first)
	_, hi = s.Bounds(last)
	return lo, hi
}

// Probabilities returns the normalized bucket probabilities.
func (s ServiceSpec) Probabilities() []float64 {
	total := 0.0
	for _, w := range s.Weights {
		total += w
	}
	probs := make([]float64, len(s.Weights))
	for i, w := range s.Weights {
		probs[i] = w / total
	}
	return probs
}

// Moments returns the exact first and second moments of the service duration.
func (s ServiceSpec) Moments() (mean, second float64) {
	for b, p := range s.Probabilities() {
		lo, hi := s.Bounds(b)
		n := float64(hi - lo)
		m := float64(lo+hi-1) / 2
		variance := (n*n - 1) / 12
		mean += p * m
		second += p * (variance + m*m)
	}
	return mean, second
}
