package sim

import (
	"encoding/json"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// DayStats summarizes one simulated day on one airport configuration.
type DayStats struct {
	Flights      int     // flights that landed during the day
	WaitingTimes []int64 // one entry per flight that waited, always > 0
	WaitFraction float64 // len(WaitingTimes) / Flights; 0 for an empty day
	Overrun      int64   // last runway release minus the operating window; negative = closed early
}

// MeanWait returns the mean of the day's waiting times, or NoWaitData when
// no flight waited.
func (d DayStats) MeanWait() WaitMean {
	if len(d.WaitingTimes) == 0 {
		return NoWaitData
	}
	xs := make([]float64, len(d.WaitingTimes))
	for i, w := range d.WaitingTimes {
		xs[i] = float64(w)
	}
	return WaitMean{Seconds: stat.Mean(xs, nil), Valid: true}
}

// WaitMean is a mean waiting time that may be undefined.
// Valid is false when the underlying sample was empty; Seconds is then zero
// and must not be read. Serializes as null when not valid.
type WaitMean struct {
	Seconds float64
	Valid   bool
}

// NoWaitData marks a day (or year) in which no flight waited.
var NoWaitData = WaitMean{}

// MeanSeconds builds a valid WaitMean.
func MeanSeconds(s float64) WaitMean {
	return WaitMean{Seconds: s, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (m WaitMean) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, m.Seconds, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *WaitMean) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = NoWaitData
		return nil
	}
	var s float64
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = MeanSeconds(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m WaitMean) MarshalYAML() (interface{}, error) {
	if !m.Valid {
		return nil, nil
	}
	return m.Seconds, nil
}

// MeanOfValid averages the valid entries and reports how many were skipped.
// Returns NoWaitData when no entry is valid.
func MeanOfValid(means []WaitMean) (WaitMean, int) {
	xs := make([]float64, 0, len(means))
	for _, m := range means {
		if m.Valid {
			xs = append(xs, m.Seconds)
		}
	}
	skipped := len(means) - len(xs)
	if len(xs) == 0 {
		return NoWaitData, skipped
	}
	return MeanSeconds(stat.Mean(xs, nil)), skipped
}
