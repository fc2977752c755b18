package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/forecast"
	"github.com/runway-sim/runway-sim/sim/report"
	"github.com/runway-sim/runway-sim/sim/trace"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// dayCmd simulates a single day and prints every runway assignment
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Simulate one day and print the runway assignment trace",
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
		opts, err := resolveDayOptions(v, defaults)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := simulateDay(opts, os.Stdout); err != nil {
			logrus.Fatalf("Day simulation failed: %v", err)
		}
	},
}

// registerDayFlags declares the flags of the day command on cmd.
func registerDayFlags(cmd *cobra.Command) {
	registerCommonFlags(cmd)
	cmd.Flags().Float64("intensity", 200, "Mean flights in the day")
	cmd.Flags().String("runways", "both", "Runway configuration: 1, 2 or both")
	cmd.Flags().Int("year", 0, "Year index of the day (selects the traffic stream)")
	cmd.Flags().Int("day", 0, "Day index within the year (selects the traffic stream)")
	cmd.Flags().Int64("window", sim.DefaultOperatingWindow, "Operating window in seconds")
	cmd.Flags().String("trace", string(trace.TraceLevelAssignments), "Assignment trace level (none, assignments)")
}

type dayOptions struct {
	Intensity  float64
	Runways    []int
	Precedence sim.Precedence
	Seed       int64
	Year       int
	Day        int
	Window     int64
	Output     string
	Trace      trace.TraceLevel
	Service    workload.ServiceSpec
}

func resolveDayOptions(v *viper.Viper, defaults *Config) (dayOptions, error) {
	opts := dayOptions{
		Intensity:  v.GetFloat64("intensity"),
		Precedence: sim.Precedence(v.GetString("precedence")),
		Seed:       v.GetInt64("seed"),
		Year:       v.GetInt("year"),
		Day:        v.GetInt("day"),
		Window:     v.GetInt64("window"),
		Output:     v.GetString("output"),
		Trace:      trace.TraceLevel(v.GetString("trace")),
		Service:    defaults.ServiceSpec(),
	}
	var err error
	if opts.Runways, err = parseRunways(v.GetString("runways")); err != nil {
		return opts, err
	}
	if err := forecast.ValidateRequest(0, 1, opts.Intensity); err != nil {
		return opts, err
	}
	if opts.Year < 0 || opts.Day < 0 {
		return opts, fmt.Errorf("year and day must be >= 0, got %d and %d", opts.Year, opts.Day)
	}
	if !sim.IsValidPrecedence(string(opts.Precedence)) {
		return opts, fmt.Errorf("unknown precedence %q; valid: first-free, earliest-free", opts.Precedence)
	}
	if !report.IsValidFormat(opts.Output) {
		return opts, fmt.Errorf("unknown output format %q; valid: text, json, yaml", opts.Output)
	}
	if opts.Window < 1 {
		return opts, fmt.Errorf("window must be >= 1 second, got %d", opts.Window)
	}
	if !trace.IsValidTraceLevel(string(opts.Trace)) {
		return opts, fmt.Errorf("unknown trace level %q; valid: none, assignments", opts.Trace)
	}
	return opts, nil
}

// dayResult is one configuration's view of the simulated day.
type dayResult struct {
	Name         string                   `json:"name" yaml:"name"`
	Runways      int                      `json:"runways" yaml:"runways"`
	Precedence   sim.Precedence           `json:"precedence" yaml:"precedence"`
	Flights      int                      `json:"flights" yaml:"flights"`
	WaitingTimes []int64                  `json:"waiting_times" yaml:"waiting_times"`
	MeanWait     sim.WaitMean             `json:"mean_wait" yaml:"mean_wait"`
	WaitFraction float64                  `json:"wait_fraction" yaml:"wait_fraction"`
	Overrun      int64                    `json:"overrun" yaml:"overrun"`
	MaxWait      int64                    `json:"max_wait" yaml:"max_wait"`
	Summary      *trace.TraceSummary      `json:"summary,omitempty" yaml:"summary,omitempty"`         // nil when tracing is off
	Assignments  []trace.AssignmentRecord `json:"assignments,omitempty" yaml:"assignments,omitempty"` // nil when tracing is off
}

// simulateDay runs the requested configurations on one shared flight list.
func simulateDay(opts dayOptions, w io.Writer) error {
	var results []dayResult
	for _, runways := range opts.Runways {
		precedence := opts.Precedence
		if precedence == "" {
			precedence = sim.PrecedenceFirstFree
		}
		study, err := forecast.NewStudy(forecast.Config{
			Airport: sim.Airport{Runways: runways, Precedence: precedence, Window: opts.Window},
			Service: opts.Service,
			Seed:    opts.Seed,
		})
		if err != nil {
			return err
		}
		dt := trace.NewDayTrace(opts.Trace)
		stats, _, err := study.Day(opts.Year, opts.Day, opts.Intensity, dt)
		if err != nil {
			return err
		}
		result := dayResult{
			Name:         configurationName(runways),
			Runways:      runways,
			Precedence:   precedence,
			Flights:      stats.Flights,
			WaitingTimes: stats.WaitingTimes,
			MeanWait:     stats.MeanWait(),
			WaitFraction: stats.WaitFraction,
			Overrun:      stats.Overrun,
			MaxWait:      maxWait(stats.WaitingTimes),
		}
		if dt.Enabled() {
			result.Summary = trace.Summarize(dt)
			result.Assignments = dt.Assignments
		}
		results = append(results, result)
	}

	switch opts.Output {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case report.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeDayText(w, results)
	}
}

func writeDayText(w io.Writer, results []dayResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "=== %s (%s) ===\n", r.Name, r.Precedence)
		if r.Summary != nil {
			fmt.Fprintf(tw, "flight\tarrival\tservice\trunway\twait\treason\n")
			for _, a := range r.Assignments {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%c\t%d\t%s\n",
					a.FlightIndex, a.Arrival, a.Service, runwayLetter(a.Runway), a.Wait, a.Reason)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		mean := "n/a"
		if r.MeanWait.Valid {
			mean = fmt.Sprintf("%.1f s", r.MeanWait.Seconds)
		}
		fmt.Fprintf(w, "Flights       : %d\n", r.Flights)
		fmt.Fprintf(w, "Waited        : %d (%.1f%%)\n", len(r.WaitingTimes), r.WaitFraction*100)
		fmt.Fprintf(w, "Mean wait     : %s\n", mean)
		fmt.Fprintf(w, "Max wait      : %d s\n", r.MaxWait)
		fmt.Fprintf(w, "Overrun       : %d s\n\n", r.Overrun)
	}
	return nil
}

func maxWait(waits []int64) int64 {
	var m int64
	for _, w := range waits {
		m = max(m, w)
	}
	return m
}

// runwayLetter names runway 0 as A, 1 as B and so on.
func runwayLetter(r int) rune {
	if r < 26 {
		return rune('A' + r)
	}
	return '?'
}
