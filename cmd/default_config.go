package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/mohae/deepcopy"
	"gopkg.in/yaml.v3"

	"github.com/runway-sim/runway-sim/sim/workload"
)

// Scenario describes a preset study configuration in defaults.yaml.
// Nil fields leave the built-in default in place.
type Scenario struct {
	Years      *int     `yaml:"years"`
	Days       *int     `yaml:"days"`
	Intensity  *float64 `yaml:"intensity"`
	Growth     *float64 `yaml:"growth"`
	Runways    *string  `yaml:"runways"`
	Precedence *string  `yaml:"precedence"`
	Seed       *int64   `yaml:"seed"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string               `yaml:"version"`
	Service   workload.ServiceSpec `yaml:"service"`
	Scenarios map[string]Scenario  `yaml:"scenarios"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Unknown fields are errors so that typos do not silently fall back to defaults.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	if len(cfg.Service.Weights) > 0 {
		if err := cfg.Service.Validate(); err != nil {
			return nil, fmt.Errorf("defaults file %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// ServiceSpec returns the service table from the file, or the built-in one
// when the file has none.
func (c *Config) ServiceSpec() workload.ServiceSpec {
	if c == nil || len(c.Service.Weights) == 0 {
		return workload.DefaultServiceSpec()
	}
	return c.Service
}

// Preset returns a copy of the named scenario that callers may modify
// without touching the loaded file.
func (c *Config) Preset(name string) (Scenario, error) {
	if c != nil {
		if s, ok := c.Scenarios[name]; ok {
			return deepcopy.Copy(s).(Scenario), nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q; available: %v", name, c.scenarioNames())
}

func (c *Config) scenarioNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
