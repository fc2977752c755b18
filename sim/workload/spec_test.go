package workload

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceSpec_Default_Valid(t *testing.T) {
	assert.NoError(t, DefaultServiceSpec().Validate())
}

func TestServiceSpec_Default_DoesNotAliasPackageWeights(t *testing.T) {
	spec := DefaultServiceSpec()
	spec.Weights[0] = 999
	assert.Equal(t, 16.0, DefaultServiceWeights[0])
}

func TestServiceSpec_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		spec ServiceSpec
	}{
		{"narrow buckets", ServiceSpec{BucketWidth: 1, Weights: []float64{1}}},
		{"no buckets", ServiceSpec{BucketWidth: 30}},
		{"negative weight", ServiceSpec{BucketWidth: 30, Weights: []float64{1, -1}}},
		{"NaN weight", ServiceSpec{BucketWidth: 30, Weights: []float64{math.NaN()}}},
		{"all zero", ServiceSpec{BucketWidth: 30, Weights: []float64{0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.spec.Validate())
		})
	}
}

func TestServiceSpec_Bounds_MatchObservedBuckets(t *testing.T) {
	spec := DefaultServiceSpec()
	lo, hi := spec.Bounds(0)
	assert.Equal(t, int64(31), lo)
	assert.Equal(t, int64(60), hi)
	lo, hi = spec.Bounds(7)
	assert.Equal(t, int64(241), lo)
	assert.Equal(t, int64(270), hi)
}

func TestServiceSpec_Range(t *testing.T) {
	lo, hi := DefaultServiceSpec().Range()
	assert.Equal(t, int64(31), lo)
	assert.Equal(t, int64(270), hi)

	lo, hi = ServiceSpec{BucketWidth: 30, Weights: []float64{0, 1, 0}}.Range()
	assert.Equal(t, int64(61), lo)
	assert.Equal(t, int64(90), hi)
}

func TestServiceSpec_Moments_SingleBucket(t *testing.T) {
	// Uniform on {31..59}: mean 45, variance (29²-1)/12 = 70
	spec := ServiceSpec{BucketWidth: 30, Weights: []float64{1}}
	mean, second := spec.Moments()
	assert.InDelta(t, 45.0, mean, 1e-9)
	assert.InDelta(t, 70.0+45.0*45.0, second, 1e-9)
}
