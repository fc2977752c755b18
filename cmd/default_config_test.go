package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runway-sim/runway-sim/sim/workload"
)

func writeDefaultsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsConfig_RepositoryFile(t *testing.T) {
	path := "../defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("defaults.yaml not found, skipping integration test")
	}

	// GIVEN the shipped defaults file
	cfg, err := loadDefaultsConfig(path)
	require.NoError(t, err)

	// THEN it carries the observed service table and a baseline scenario
	assert.Equal(t, workload.DefaultServiceSpec(), cfg.ServiceSpec())
	baseline, err := cfg.Preset("baseline")
	require.NoError(t, err)
	require.NotNil(t, baseline.Years)
	assert.Equal(t, 12, *baseline.Years)
	assert.Equal(t, 0.05, *baseline.Growth)
}

func TestLoadDefaultsConfig_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a scenario field
	path := writeDefaultsFile(t, `
version: "1"
scenarios:
  typo:
    yeras: 3
`)

	// WHEN loaded THEN strict parsing reports it
	_, err := loadDefaultsConfig(path)
	assert.Error(t, err)
}

func TestLoadDefaultsConfig_InvalidService_Rejected(t *testing.T) {
	path := writeDefaultsFile(t, `
service:
  bucket_width: 30
  weights: [1, -2]
`)

	_, err := loadDefaultsConfig(path)
	assert.Error(t, err)
}

func TestLoadDefaultsConfig_NoServiceBlock_UsesBuiltIn(t *testing.T) {
	path := writeDefaultsFile(t, `
version: "1"
scenarios:
  short: {years: 1}
`)

	cfg, err := loadDefaultsConfig(path)
	require.NoError(t, err)
	assert.Equal(t, workload.DefaultServiceSpec(), cfg.ServiceSpec())
}

func TestPreset_ReturnsIndependentCopy(t *testing.T) {
	// GIVEN a loaded scenario
	years := 4
	cfg := &Config{Scenarios: map[string]Scenario{"s": {Years: &years}}}

	// WHEN the caller modifies the returned preset
	preset, err := cfg.Preset("s")
	require.NoError(t, err)
	*preset.Years = 99

	// THEN the loaded configuration is unchanged
	assert.Equal(t, 4, *cfg.Scenarios["s"].Years)
}

func TestPreset_Unknown_ListsAvailable(t *testing.T) {
	cfg := &Config{Scenarios: map[string]Scenario{"b": {}, "a": {}}}

	_, err := cfg.Preset("missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[a b]")
}

func TestConfig_NilIsUsable(t *testing.T) {
	var cfg *Config
	assert.Equal(t, workload.DefaultServiceSpec(), cfg.ServiceSpec())
	_, err := cfg.Preset("baseline")
	assert.Error(t, err)
}
