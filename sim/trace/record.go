// Package trace records runway assignment decisions for a simulated day.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Assignment reasons.
const (
	ReasonRunwayFree  = "runway-free"  // flight landed on arrival
	ReasonQueuedFirst = "queued-first" // all runways busy, joined the earliest-releasing one
)

// AssignmentRecord captures where one flight landed and how long it waited.
type AssignmentRecord struct {
	FlightIndex  int    `json:"flight" yaml:"flight"`
	Arrival      int64  `json:"arrival" yaml:"arrival"`
	Service      int64  `json:"service" yaml:"service"`
	Runway       int    `json:"runway" yaml:"runway"`
	FreeAtBefore int64  `json:"free_at_before" yaml:"free_at_before"` // runway clock seen by the flight
	Wait         int64  `json:"wait" yaml:"wait"`
	Reason       string `json:"reason" yaml:"reason"`
}
