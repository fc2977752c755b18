package workload

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/runway-sim/runway-sim/sim"
)

// ErrInvalidIntensity is returned for negative, NaN or infinite intensities
// and for intensities above MaxIntensity.
var ErrInvalidIntensity = errors.New("invalid traffic intensity")

// MaxIntensity is the largest accepted expected flight count per day. A whole
// day of flights is held in memory, so the Poisson draw must stay bounded.
const MaxIntensity = 1e6

// Generator produces a day's flight list.
type Generator struct {
	window  int64
	service ServiceSpec
}

// NewGenerator creates a Generator for the given operating window (seconds)
// and service distribution.
func NewGenerator(window int64, service ServiceSpec) (*Generator, error) {
	if window <= 0 {
		return nil, fmt.Errorf("operating window must be positive, got %d", window)
	}
	if err := service.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service spec: %w", err)
	}
	return &Generator{window: window, service: service}, nil
}

// NewDefaultGenerator returns the 13-hour window with the observed service table.
func NewDefaultGenerator() *Generator {
	return &Generator{window: sim.DefaultOperatingWindow, service: DefaultServiceSpec()}
}

// Window returns the operating window in seconds.
func (g *Generator) Window() int64 { return g.window }

// Service returns the service distribution.
func (g *Generator) Service() ServiceSpec { return g.service }

// Generate draws one day of flights with expected count intensity.
// Deterministic given the rng state. Returns flights sorted by arrival time.
//
// Draw order: flight count, then every arrival time, then one service
// duration per flight in arrival order.
func (g *Generator) Generate(rng *rand.Rand, intensity float64) ([]sim.Flight, error) {
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity < 0 || intensity > MaxIntensity {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntensity, intensity)
	}

	n := FlightCount(rng, intensity)
	arrivals := ArrivalTimes(rng, n, g.window)
	slices.Sort(arrivals)

	service := NewServiceSampler(g.service, rng)
	flights := make([]sim.Flight, n)
	for i, arrival := range arrivals {
		flights[i] = sim.Flight{ArrivalTime: arrival, ServiceDuration: service.Sample()}
	}

	logrus.Debugf("generated %d flights at intensity %.1f", n, intensity)
	return flights, nil
}
