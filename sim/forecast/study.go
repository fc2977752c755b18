// Package forecast runs Monte-Carlo airport studies: many independent days
// per year, over a horizon of years with compounding traffic growth.
package forecast

import (
	"fmt"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/trace"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// Study binds an airport, a flight generator and a simulation key.
// A Study holds no mutable state and is safe for concurrent use.
type Study struct {
	airport   sim.Airport
	generator *workload.Generator
	key       sim.SimulationKey
	growth    float64
	workers   int
}

// NewStudy validates cfg and creates a Study.
func NewStudy(cfg Config) (*Study, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	service := cfg.Service
	if len(service.Weights) == 0 && service.BucketWidth == 0 {
		service = workload.DefaultServiceSpec()
	}
	generator, err := workload.NewGenerator(cfg.Airport.OperatingWindow(), service)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Study{
		airport:   cfg.Airport,
		generator: generator,
		key:       sim.NewSimulationKey(cfg.Seed),
		growth:    cfg.Growth,
		workers:   workers,
	}, nil
}

// Airport returns the simulated runway configuration.
func (s *Study) Airport() sim.Airport { return s.airport }

// Generator returns the flight generator.
func (s *Study) Generator() *workload.Generator { return s.generator }

// Growth returns the yearly traffic growth rate.
func (s *Study) Growth() float64 { return s.growth }

// Day generates and simulates one day. The flights depend only on the seed,
// year and day, so two studies with the same seed but different airports see
// the same traffic. dt may be nil.
func (s *Study) Day(year, day int, intensity float64, dt *trace.DayTrace) (sim.DayStats, []sim.Flight, error) {
	rng := s.key.Stream(sim.SubsystemDay(year, day))
	flights, err := s.generator.Generate(rng, intensity)
	if err != nil {
		return sim.DayStats{}, nil, fmt.Errorf("year %d day %d: %w", year, day, err)
	}
	return s.airport.SimulateDay(flights, dt), flights, nil
}
