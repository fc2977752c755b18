package report

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoData is returned when a histogram is requested over no values.
var ErrNoData = errors.New("no data")

// Histogram is an equal-width histogram over the range of its data.
// Edges has len(Counts)+1 entries; bin i covers [Edges[i], Edges[i+1]).
type Histogram struct {
	Label   string    `json:"label" yaml:"label"`
	Year    int       `json:"year" yaml:"year"`
	Edges   []float64 `json:"edges" yaml:"edges"`
	Counts  []float64 `json:"counts" yaml:"counts"`
	Density []float64 `json:"density" yaml:"density"` // counts / (n × bin width); integrates to 1
}

// NewHistogram bins values into bins equal-width bins spanning [min, max].
// The maximum value falls into the last bin. A constant sample gets a single
// unit-wide range centred on the value.
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("bins must be >= 1, got %d", bins)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	x := slices.Clone(values)
	slices.Sort(x)
	if floats.HasNaN(x) {
		return nil, fmt.Errorf("histogram values contain NaN")
	}

	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram needs the top edge strictly above the maximum
	edges[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, edges, x, nil)
	edges[bins] = hi

	width := (hi - lo) / float64(bins)
	density := make([]float64, bins)
	for i, c := range counts {
		density[i] = c / (float64(len(x)) * width)
	}
	return &Histogram{Edges: edges, Counts: counts, Density: density}, nil
}
