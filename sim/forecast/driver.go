package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// ErrInvalidRequest is returned when a study is asked for negative counts,
// an unusable base intensity, or a horizon whose traffic exceeds
// workload.MaxIntensity. Nothing is simulated in that case.
var ErrInvalidRequest = errors.New("invalid study request")

// YearSeries holds the results of years 0..N, one DaySeries per year.
type YearSeries struct {
	Runways       int            `json:"runways" yaml:"runways"`
	Precedence    sim.Precedence `json:"precedence" yaml:"precedence"`
	BaseIntensity float64        `json:"base_intensity" yaml:"base_intensity"`
	Growth        float64        `json:"growth" yaml:"growth"`
	Years         []DaySeries    `json:"years" yaml:"years"`
}

// Intensities returns the traffic intensity used for each year.
func (ys *YearSeries) Intensities() []int {
	out := make([]int, len(ys.Years))
	for i, y := range ys.Years {
		out[i] = int(y.Intensity)
	}
	return out
}

// WaitTimeSeries returns the per-day mean waits, indexed [year][day].
func (ys *YearSeries) WaitTimeSeries() [][]sim.WaitMean {
	out := make([][]sim.WaitMean, len(ys.Years))
	for i := range ys.Years {
		out[i] = ys.Years[i].MeanWaits
	}
	return out
}

// WaitFractionSeries returns the per-day wait fractions, indexed [year][day].
func (ys *YearSeries) WaitFractionSeries() [][]float64 {
	out := make([][]float64, len(ys.Years))
	for i := range ys.Years {
		out[i] = ys.Years[i].WaitFractions
	}
	return out
}

// OverrunSeries returns the per-day overruns, indexed [year][day].
func (ys *YearSeries) OverrunSeries() [][]int64 {
	out := make([][]int64, len(ys.Years))
	for i := range ys.Years {
		out[i] = ys.Years[i].Overruns
	}
	return out
}

// ValidateRequest checks driver inputs.
func ValidateRequest(years, days int, base float64) error {
	if years < 0 {
		return fmt.Errorf("%w: years must be >= 0, got %d", ErrInvalidRequest, years)
	}
	if days < 0 {
		return fmt.Errorf("%w: days must be >= 0, got %d", ErrInvalidRequest, days)
	}
	if math.IsNaN(base) || math.IsInf(base, 0) || base < 0 {
		return fmt.Errorf("%w: base intensity must be a finite number >= 0, got %v", ErrInvalidRequest, base)
	}
	if base > workload.MaxIntensity {
		return fmt.Errorf("%w: base intensity must be <= %g flights/day, got %v", ErrInvalidRequest, workload.MaxIntensity, base)
	}
	return nil
}

// ValidateHorizon checks that the busiest year of the study stays within
// workload.MaxIntensity. It assumes ValidateRequest already passed.
func ValidateHorizon(years int, base, growth float64) error {
	peak := base
	if growth > 0 {
		peak = math.Round(base * math.Pow(1+growth, float64(years)))
	}
	if peak > workload.MaxIntensity {
		return fmt.Errorf("%w: year %d intensity %g exceeds %g flights/day", ErrInvalidRequest, years, peak, workload.MaxIntensity)
	}
	return nil
}

// RunYears simulates years 0..years inclusive with days days each. Year i
// uses intensity IntensityForYear(base, growth, i).
func (s *Study) RunYears(ctx context.Context, years, days int, base float64) (*YearSeries, error) {
	if err := ValidateRequest(years, days, base); err != nil {
		return nil, err
	}
	if err := ValidateHorizon(years, base, s.growth); err != nil {
		return nil, err
	}
	if days == 0 {
		logrus.Warn("days per year is 0; every year will be empty")
	}

	logrus.Infof("Starting study: runways=%d precedence=%s years=%d days=%d base=%.1f growth=%.3f workers=%d",
		s.airport.Runways, s.precedence(), years, days, base, s.growth, s.workers)
	start := time.Now()

	result := &YearSeries{
		Runways:       s.airport.Runways,
		Precedence:    s.precedence(),
		BaseIntensity: base,
		Growth:        s.growth,
		Years:         make([]DaySeries, 0, years+1),
	}
	for year := 0; year <= years; year++ {
		intensity := IntensityForYear(base, s.growth, year)
		series, err := s.RunDays(ctx, year, days, float64(intensity))
		if err != nil {
			return nil, err
		}
		result.Years = append(result.Years, *series)
	}

	logrus.Infof("Study complete in %s", time.Since(start).Round(time.Millisecond))
	return result, nil
}

func (s *Study) precedence() sim.Precedence {
	if s.airport.Precedence == "" {
		return sim.PrecedenceFirstFree
	}
	return s.airport.Precedence
}

// SimulateSingleRunwayYears runs the one-runway study with the default
// configuration and the given seed.
func SimulateSingleRunwayYears(years, daysPerYear int, baseIntensity float64, seed int64) (*YearSeries, error) {
	return simulateYears(1, years, daysPerYear, baseIntensity, seed)
}

// SimulateDualRunwayYears runs the two-runway study with the default
// configuration and the given seed.
func SimulateDualRunwayYears(years, daysPerYear int, baseIntensity float64, seed int64) (*YearSeries, error) {
	return simulateYears(2, years, daysPerYear, baseIntensity, seed)
}

func simulateYears(runways, years, days int, base float64, seed int64) (*YearSeries, error) {
	cfg := DefaultConfig(runways)
	cfg.Seed = seed
	study, err := NewStudy(cfg)
	if err != nil {
		return nil, err
	}
	return study.RunYears(context.Background(), years, days, base)
}
