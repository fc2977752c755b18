// Package testutil provides shared test infrastructure for the runway
// simulator. It holds the hand-computed day scenarios and assertion helpers
// used across sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// DayScenarioSet represents the structure of testdata/day_scenarios.json.
type DayScenarioSet struct {
	Scenarios []DayScenario `json:"scenarios"`
}

// DayScenario is one flight list with the expected outcome on one and on
// two runways over the default operating window.
type DayScenario struct {
	Name    string      `json:"name"`
	Flights [][2]int64  `json:"flights"` // (arrival, service) pairs sorted by arrival
	Single  ExpectedDay `json:"single"`
	Dual    ExpectedDay `json:"dual"`
}

// ExpectedDay is the hand-computed result of one day.
type ExpectedDay struct {
	WaitingTimes []int64 `json:"waiting_times"`
	WaitFraction float64 `json:"wait_fraction"`
	Overrun      int64   `json:"overrun"`
}

// LoadDayScenarios loads the scenario table from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadDayScenarios(t *testing.T) *DayScenarioSet {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "day_scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read day scenarios: %v", err)
	}

	var set DayScenarioSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Failed to parse day scenarios: %v", err)
	}
	if len(set.Scenarios) == 0 {
		t.Fatal("day scenarios file has no scenarios")
	}
	return &set
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
