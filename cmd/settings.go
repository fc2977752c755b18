package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/runway-sim/runway-sim/sim"
	"github.com/runway-sim/runway-sim/sim/forecast"
	"github.com/runway-sim/runway-sim/sim/report"
	"github.com/runway-sim/runway-sim/sim/workload"
)

// envPrefix is prepended to every flag name to form its environment variable,
// e.g. --histogram-years is read from RUNWAY_SIM_HISTOGRAM_YEARS.
const envPrefix = "RUNWAY_SIM"

// newSettings binds the command's flags and the environment into a fresh
// viper instance. Explicit flags win over the environment, which wins over
// flag defaults.
func newSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// runOptions is the fully resolved configuration of a `run` invocation.
type runOptions struct {
	Years          int
	Days           int
	Intensity      float64
	Growth         float64
	Runways        []int
	Precedence     sim.Precedence
	Seed           int64
	Workers        int
	Window         int64
	HistogramYears []int
	Bins           int
	Series         bool
	Output         string
	Service        workload.ServiceSpec
}

// resolveRunOptions merges flags, environment, the optional scenario preset
// and the defaults file. A preset value applies only when the user did not
// set that key on the command line or in the environment.
func resolveRunOptions(v *viper.Viper, defaults *Config) (runOptions, error) {
	opts := runOptions{
		Years:      v.GetInt("years"),
		Days:       v.GetInt("days"),
		Intensity:  v.GetFloat64("intensity"),
		Growth:     v.GetFloat64("growth"),
		Precedence: sim.Precedence(v.GetString("precedence")),
		Seed:       v.GetInt64("seed"),
		Workers:    v.GetInt("workers"),
		Window:     v.GetInt64("window"),
		Bins:       v.GetInt("bins"),
		Series:     v.GetBool("series"),
		Output:     v.GetString("output"),
		Service:    defaults.ServiceSpec(),
	}
	runways := v.GetString("runways")

	if name := v.GetString("scenario"); name != "" {
		preset, err := defaults.Preset(name)
		if err != nil {
			return opts, err
		}
		logrus.Infof("Applying scenario %q", name)
		if preset.Years != nil && !v.IsSet("years") {
			opts.Years = *preset.Years
		}
		if preset.Days != nil && !v.IsSet("days") {
			opts.Days = *preset.Days
		}
		if preset.Intensity != nil && !v.IsSet("intensity") {
			opts.Intensity = *preset.Intensity
		}
		if preset.Growth != nil && !v.IsSet("growth") {
			opts.Growth = *preset.Growth
		}
		if preset.Runways != nil && !v.IsSet("runways") {
			runways = *preset.Runways
		}
		if preset.Precedence != nil && !v.IsSet("precedence") {
			opts.Precedence = sim.Precedence(*preset.Precedence)
		}
		if preset.Seed != nil && !v.IsSet("seed") {
			opts.Seed = *preset.Seed
		}
	}

	var err error
	if opts.Runways, err = parseRunways(runways); err != nil {
		return opts, err
	}
	if opts.HistogramYears, err = parseYearList(v.GetString("histogram-years")); err != nil {
		return opts, err
	}
	if err := forecast.ValidateRequest(opts.Years, opts.Days, opts.Intensity); err != nil {
		return opts, err
	}
	if err := forecast.ValidateHorizon(opts.Years, opts.Intensity, opts.Growth); err != nil {
		return opts, err
	}
	if !sim.IsValidPrecedence(string(opts.Precedence)) {
		return opts, fmt.Errorf("unknown precedence %q; valid: first-free, earliest-free", opts.Precedence)
	}
	if !report.IsValidFormat(opts.Output) {
		return opts, fmt.Errorf("unknown output format %q; valid: text, json, yaml", opts.Output)
	}
	if opts.Bins < 1 {
		return opts, fmt.Errorf("bins must be >= 1, got %d", opts.Bins)
	}
	if opts.Window < 1 {
		return opts, fmt.Errorf("window must be >= 1 second, got %d", opts.Window)
	}
	return opts, nil
}

// parseRunways accepts "1", "2" or "both".
func parseRunways(s string) ([]int, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return []int{1}, nil
	case "2":
		return []int{2}, nil
	case "both", "":
		return []int{1, 2}, nil
	default:
		return nil, fmt.Errorf("runways must be 1, 2 or both, got %q", s)
	}
}

// parseYearList parses a comma-separated list of non-negative years.
func parseYearList(s string) ([]int, error) {
	var years []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		y, err := strconv.Atoi(field)
		if err != nil || y < 0 {
			return nil, fmt.Errorf("histogram year %q is not a non-negative integer", field)
		}
		years = append(years, y)
	}
	return years, nil
}

// loadDefaultsFor reads the defaults file named by the --defaults flag.
// A missing file at the default location is not an error; the built-in
// service table is used and no scenarios are available.
func loadDefaultsFor(v *viper.Viper) (*Config, error) {
	path := v.GetString("defaults")
	cfg, err := loadDefaultsConfig(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) && !v.IsSet("defaults") {
		logrus.Debugf("No defaults file at %s; using built-in service table", path)
		return nil, nil
	}
	return nil, err
}

// applyLogLevel sets the logrus level from the --log setting.
func applyLogLevel(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", v.GetString("log"), err)
	}
	logrus.SetLevel(level)
	return nil
}
