package report

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/analytic"
	"github.com/runway-sim/runway-sim/sim/forecast"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// Options controls what Build derives from a study.
type Options struct {
	HistogramYears []int                // years whose day distributions are binned
	Bins           int                  // histogram bins (default 20)
	Service        workload.ServiceSpec // for the analytic reference; zero value means default
	Window         int64                // operating window; 0 means the default
	IncludeSeries  bool                 // embed the raw per-day series
}

// Reference is the closed-form queueing estimate for one year.
type Reference struct {
	Year              int          `json:"year" yaml:"year"`
	Utilization       float64      `json:"utilization" yaml:"utilization"`
	ProbWait          float64      `json:"prob_wait" yaml:"prob_wait"`
	MeanWaitGivenWait sim.WaitMean `json:"mean_wait_given_wait" yaml:"mean_wait_given_wait"`
}

// Configuration is the report for one airport configuration.
type Configuration struct {
	Name              string               `json:"name" yaml:"name"`
	Runways           int                  `json:"runways" yaml:"runways"`
	Precedence        sim.Precedence       `json:"precedence" yaml:"precedence"`
	Years             []YearSummary        `json:"years" yaml:"years"`
	Reference         []Reference          `json:"reference" yaml:"reference"`
	WaitHistograms    []Histogram          `json:"wait_histograms" yaml:"wait_histograms"`
	OverrunHistograms []Histogram          `json:"overrun_histograms" yaml:"overrun_histograms"`
	Series            *forecast.YearSeries `json:"series,omitempty" yaml:"series,omitempty"`
}

// Report compares one or more configurations run on the same traffic.
type Report struct {
	Seed           int64           `json:"seed" yaml:"seed"`
	Years          int             `json:"years" yaml:"years"`
	DaysPerYear    int             `json:"days_per_year" yaml:"days_per_year"`
	BaseIntensity  float64         `json:"base_intensity" yaml:"base_intensity"`
	Growth         float64         `json:"growth" yaml:"growth"`
	Configurations []Configuration `json:"configurations" yaml:"configurations"`
}

// Build derives the report data for one study result.
func Build(name string, ys *forecast.YearSeries, opts Options) (*Configuration, error) {
	bins := opts.Bins
	if bins == 0 {
		bins = 20
	}
	service := opts.Service
	if len(service.Weights) == 0 {
		service = workload.DefaultServiceSpec()
	}
	window := opts.Window
	if window == 0 {
		window = sim.DefaultOperatingWindow
	}

	cfg := &Configuration{
		Name:       name,
		Runways:    ys.Runways,
		Precedence: ys.Precedence,
		Years:      SummarizeYears(ys),
	}

	meanS, secondS := service.Moments()
	for _, y := range ys.Years {
		q := analytic.DailyQueue(y.Intensity, window, ys.Runways, meanS, secondS)
		cfg.Reference = append(cfg.Reference, Reference{
			Year:              y.Year,
			Utilization:       q.Utilization(),
			ProbWait:          q.ProbWait(),
			MeanWaitGivenWait: q.MeanWaitGivenWait(),
		})
	}

	for _, year := range opts.HistogramYears {
		if year < 0 || year >= len(ys.Years) {
			logrus.Warnf("histogram year %d outside simulated range 0..%d; skipped", year, len(ys.Years)-1)
			continue
		}
		ds := &ys.Years[year]

		waits := make([]float64, 0, len(ds.MeanWaits))
		for _, m := range ds.MeanWaits {
			if m.Valid {
				waits = append(waits, m.Seconds)
			}
		}
		if h, err := histogramFor("mean_wait", year, waits, bins); err != nil {
			return nil, err
		} else if h != nil {
			cfg.WaitHistograms = append(cfg.WaitHistograms, *h)
		}

		overruns := make([]float64, len(ds.Overruns))
		for i, o := range ds.Overruns {
			overruns[i] = float64(o)
		}
		if h, err := histogramFor("overrun", year, overruns, bins); err != nil {
			return nil, err
		} else if h != nil {
			cfg.OverrunHistograms = append(cfg.OverrunHistograms, *h)
		}
	}

	if opts.IncludeSeries {
		cfg.Series = ys
	}
	return cfg, nil
}

// histogramFor returns nil without error when there is nothing to bin.
func histogramFor(label string, year int, values []float64, bins int) (*Histogram, error) {
	h, err := NewHistogram(values, bins)
	if errors.Is(err, ErrNoData) {
		logrus.Debugf("no %s data in year %d; histogram skipped", label, year)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s histogram for year %d: %w", label, year, err)
	}
	h.Label = label
	h.Year = year
	return h, nil
}
