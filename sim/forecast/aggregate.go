package forecast

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// DaySeries holds per-day results for one year at one traffic intensity.
// All slices are indexed by day.
type DaySeries struct {
	Year          int            `json:"year" yaml:"year"`
	Intensity     float64        `json:"intensity" yaml:"intensity"`
	MeanWaits     []sim.WaitMean `json:"mean_waits" yaml:"mean_waits"` // NoWaitData on days nobody waited
	WaitFractions []float64      `json:"wait_fractions" yaml:"wait_fractions"`
	Overruns      []int64        `json:"overruns" yaml:"overruns"`
	Flights       []int          `json:"flights" yaml:"flights"`
}

// Days returns the number of simulated days.
func (ds *DaySeries) Days() int { return len(ds.Overruns) }

// RunDays simulates days independent days of the given year at the given
// intensity. Each day draws fresh flights from its own RNG stream, so the
// result does not depend on the worker count.
func (s *Study) RunDays(ctx context.Context, year, days int, intensity float64) (*DaySeries, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be >= 0, got %d", ErrInvalidRequest, days)
	}
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity < 0 || intensity > workload.MaxIntensity {
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidRequest, workload.ErrInvalidIntensity, intensity)
	}
	series := &DaySeries{
		Year:          year,
		Intensity:     intensity,
		MeanWaits:     make([]sim.WaitMean, days),
		WaitFractions: make([]float64, days),
		Overruns:      make([]int64, days),
		Flights:       make([]int, days),
	}
	err := forEachIndex(ctx, days, s.workers, func(day int) error {
		stats, _, err := s.Day(year, day, intensity, nil)
		if err != nil {
			return err
		}
		series.MeanWaits[day] = stats.MeanWait()
		series.WaitFractions[day] = stats.WaitFraction
		series.Overruns[day] = stats.Overrun
		series.Flights[day] = stats.Flights
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.Debugf("year %d: %d days at intensity %.0f", year, days, intensity)
	return series, nil
}
