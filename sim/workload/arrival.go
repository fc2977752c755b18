package workload

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// FlightCount draws the number of flights in a day from Poisson(intensity).
// intensity must be finite and >= 0; zero yields zero without drawing.
func FlightCount(rng *rand.Rand, intensity float64) int {
	if intensity == 0 {
		return 0
	}
	p := distuv.Poisson{Lambda: intensity, Src: rng}
	return int(math.Round(p.Rand()))
}

// ArrivalTimes draws n arrival times uniformly from [0, window).
// The result is unsorted.
func ArrivalTimes(rng *rand.Rand, n int, window int64) []int64 {
	arrivals := make([]int64, n)
	for i := range arrivals {
		arrivals[i] = rng.Int64N(window)
	}
	return arrivals
}
