// Package report turns study results into the figures a plotting or
// reporting tool consumes: per-year summaries and per-day histograms.
package report

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/forecast"
)

// YearSummary condenses one year of simulated days.
type YearSummary struct {
	Year             int          `json:"year" yaml:"year"`
	Intensity        float64      `json:"intensity" yaml:"intensity"`
	Days             int          `json:"days" yaml:"days"`
	MeanWait         sim.WaitMean `json:"mean_wait" yaml:"mean_wait"`       // mean of valid day means
	NoDataDays       int          `json:"no_data_days" yaml:"no_data_days"` // days where nobody waited
	MeanWaitFraction float64      `json:"mean_wait_fraction" yaml:"mean_wait_fraction"`
	MeanOverrun      float64      `json:"mean_overrun" yaml:"mean_overrun"`
	OverrunP50       float64      `json:"overrun_p50" yaml:"overrun_p50"`
	OverrunP95       float64      `json:"overrun_p95" yaml:"overrun_p95"`
	MeanFlights      float64      `json:"mean_flights" yaml:"mean_flights"`
}

// SummarizeYear condenses a DaySeries. Days without any waiting flight are
// skipped in MeanWait and counted in NoDataDays. A year with zero days has
// zero-valued numeric fields and a no-data MeanWait.
func SummarizeYear(ds *forecast.DaySeries) YearSummary {
	summary := YearSummary{
		Year:      ds.Year,
		Intensity: ds.Intensity,
		Days:      ds.Days(),
	}
	summary.MeanWait, summary.NoDataDays = sim.MeanOfValid(ds.MeanWaits)
	if summary.Days == 0 {
		return summary
	}

	summary.MeanWaitFraction = stat.Mean(ds.WaitFractions, nil)

	overruns := make([]float64, len(ds.Overruns))
	for i, o := range ds.Overruns {
		overruns[i] = float64(o)
	}
	slices.Sort(overruns)
	summary.MeanOverrun = stat.Mean(overruns, nil)
	summary.OverrunP50 = stat.Quantile(0.5, stat.Empirical, overruns, nil)
	summary.OverrunP95 = stat.Quantile(0.95, stat.Empirical, overruns, nil)

	flights := make([]float64, len(ds.Flights))
	for i, f := range ds.Flights {
		flights[i] = float64(f)
	}
	summary.MeanFlights = stat.Mean(flights, nil)
	return summary
}

// SummarizeYears condenses every year of a study.
func SummarizeYears(ys *forecast.YearSeries) []YearSummary {
	out := make([]YearSummary, len(ys.Years))
	for i := range ys.Years {
		out[i] = SummarizeYear(&ys.Years[i])
	}
	return out
}
