package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/forecast"
	"github.com/runway-sim/runway-sim/sim/report"
)

// runCmd executes the multi-year study using parameters from CLI flags,
// environment and the optional scenario preset
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the multi-year runway study",
	Run: func(cmd *cobra.Command, args []string) {
		v, err := newSettings(cmd)
		if err != nil {
			logrus.Fatalf("Failed to bind flags: %v", err)
		}
		if err := applyLogLevel(v); err != nil {
			logrus.Fatalf("%v", err)
		}
		defaults, err := loadDefaultsFor(v)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		opts, err := resolveRunOptions(v, defaults)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runStudy(cmd.Context(), opts, os.Stdout); err != nil {
			logrus.Fatalf("Study failed: %v", err)
		}
	},
}

// registerRunFlags declares the flags of the run command on cmd.
func registerRunFlags(cmd *cobra.Command) {
	registerCommonFlags(cmd)
	cmd.Flags().Int("years", 12, "Number of years after year 0 to simulate")
	cmd.Flags().Int("days", 300, "Simulated days per year")
	cmd.Flags().Float64("intensity", 200, "Mean flights per day in year 0")
	cmd.Flags().Float64("growth", forecast.DefaultGrowth, "Yearly traffic growth rate")
	cmd.Flags().String("runways", "both", "Runway configuration: 1, 2 or both")
	cmd.Flags().Int("workers", 1, "Days simulated concurrently")
	cmd.Flags().Int64("window", sim.DefaultOperatingWindow, "Operating window in seconds")
	cmd.Flags().String("histogram-years", "0,3,6,9", "Comma-separated years to build day histograms for")
	cmd.Flags().Int("bins", 20, "Histogram bins")
	cmd.Flags().String("scenario", "", "Preset from the defaults file")
	cmd.Flags().Bool("series", false, "Embed the raw per-day series in JSON and YAML reports")
}

// registerCommonFlags declares the flags shared by run and day.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 1, "Seed for traffic generation")
	cmd.Flags().String("precedence", string(sim.PrecedenceFirstFree), "Runway selection rule (first-free, earliest-free)")
	cmd.Flags().String("output", report.FormatText, "Output format (text, json, yaml)")
	cmd.Flags().String("defaults", "defaults.yaml", "Path to the defaults file")
	cmd.Flags().String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// runStudy simulates every requested runway configuration on the same
// traffic and writes the report to w.
func runStudy(ctx context.Context, opts runOptions, w io.Writer) error {
	start := time.Now()
	rep := &report.Report{
		Seed:          opts.Seed,
		Years:         opts.Years,
		DaysPerYear:   opts.Days,
		BaseIntensity: opts.Intensity,
		Growth:        opts.Growth,
	}
	reportOpts := report.Options{
		HistogramYears: opts.HistogramYears,
		Bins:           opts.Bins,
		Service:        opts.Service,
		Window:         opts.Window,
		IncludeSeries:  opts.Series,
	}

	for _, runways := range opts.Runways {
		study, err := forecast.NewStudy(forecast.Config{
			Airport: sim.Airport{Runways: runways, Precedence: opts.Precedence, Window: opts.Window},
			Service: opts.Service,
			Seed:    opts.Seed,
			Growth:  opts.Growth,
			Workers: opts.Workers,
		})
		if err != nil {
			return err
		}
		series, err := study.RunYears(ctx, opts.Years, opts.Days, opts.Intensity)
		if err != nil {
			return err
		}
		cfg, err := report.Build(configurationName(runways), series, reportOpts)
		if err != nil {
			return err
		}
		rep.Configurations = append(rep.Configurations, *cfg)
	}

	logrus.Infof("All configurations simulated in %s", time.Since(start).Round(time.Millisecond))
	return rep.Write(w, opts.Output)
}

func configurationName(runways int) string {
	switch runways {
	case 1:
		return "single-runway"
	case 2:
		return "dual-runway"
	default:
		return fmt.Sprintf("%d-runway", runways)
	}
}
