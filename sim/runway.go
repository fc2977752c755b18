package sim

import (
	"errors"
	"fmt"

	"github.com/runway-sim/runway-sim/sim/trace"
)

// ErrInvalidAirport is returned by Airport.Validate.
var ErrInvalidAirport = errors.New("invalid airport configuration")

// Precedence selects how an arriving flight picks a runway.
type Precedence string

const (
	// PrecedenceFirstFree scans runways in index order and takes the first one
	// that is free at arrival. When every runway is busy the flight queues on
	// the runway released earliest (lowest index on ties). With two runways
	// runway A is always checked before B, whatever B's state.
	PrecedenceFirstFree Precedence = "first-free"
	// PrecedenceEarliestFree always takes the runway released earliest
	// (lowest index on ties), whether or not it is busy at arrival.
	PrecedenceEarliestFree Precedence = "earliest-free"
)

var validPrecedences = map[Precedence]bool{
	PrecedenceFirstFree:    true,
	PrecedenceEarliestFree: true,
	"":                     true, // empty defaults to first-free
}

// IsValidPrecedence returns true if the given name is a recognized precedence rule.
func IsValidPrecedence(name string) bool {
	return validPrecedences[Precedence(name)]
}

// Airport is a runway configuration that can simulate a day of landings.
// Each runway is a single free-at clock; there is no other state.
type Airport struct {
	Runways    int        // number of interchangeable runways (>= 1)
	Precedence Precedence // runway selection rule; "" means first-free
	Window     int64      // operating window in seconds; 0 means DefaultOperatingWindow
}

// SingleRunway returns the one-runway airport.
func SingleRunway() Airport {
	return Airport{Runways: 1, Precedence: PrecedenceFirstFree, Window: DefaultOperatingWindow}
}

// DualRunway returns the two-runway airport with A-before-B precedence.
func DualRunway() Airport {
	return Airport{Runways: 2, Precedence: PrecedenceFirstFree, Window: DefaultOperatingWindow}
}

// Validate checks the configuration.
func (a Airport) Validate() error {
	if a.Runways < 1 {
		return fmt.Errorf("%w: runways must be >= 1, got %d", ErrInvalidAirport, a.Runways)
	}
	if !IsValidPrecedence(string(a.Precedence)) {
		return fmt.Errorf("%w: unknown precedence %q; valid: first-free, earliest-free", ErrInvalidAirport, a.Precedence)
	}
	if a.Window < 0 {
		return fmt.Errorf("%w: window must be >= 0, got %d", ErrInvalidAirport, a.Window)
	}
	return nil
}

// OperatingWindow returns the effective window in seconds.
func (a Airport) OperatingWindow() int64 {
	if a.Window == 0 {
		return DefaultOperatingWindow
	}
	return a.Window
}

// SimulateDay processes flights in the given order (callers pass them sorted
// by arrival) and returns the day's statistics. Runway clocks start at 0.
//
// A flight that finds its runway busy waits until the runway's free-at time and
// pushes that clock forward by its service duration. A flight that finds its
// runway free resets the clock to arrival + service.
//
// dt may be nil. Panics if the airport has no runway; call Validate first.
func (a Airport) SimulateDay(flights []Flight, dt *trace.DayTrace) DayStats {
	if a.Runways < 1 {
		panic(fmt.Sprintf("Airport.SimulateDay: %d runways", a.Runways))
	}
	freeAt := make([]int64, a.Runways)
	waits := make([]int64, 0)

	for i, f := range flights {
		r, queued := a.pick(freeAt, f.ArrivalTime)
		before := freeAt[r]
		record := trace.AssignmentRecord{
			FlightIndex:  i,
			Arrival:      f.ArrivalTime,
			Service:      f.ServiceDuration,
			Runway:       r,
			FreeAtBefore: before,
			Reason:       trace.ReasonRunwayFree,
		}
		if queued {
			wait := before - f.ArrivalTime
			waits = append(waits, wait)
			freeAt[r] += f.ServiceDuration
			record.Wait = wait
			record.Reason = trace.ReasonQueuedFirst
		} else {
			freeAt[r] = f.Completion()
		}
		dt.RecordAssignment(record)
	}

	closing := freeAt[0]
	for _, t := range freeAt[1:] {
		if t > closing {
			closing = t
		}
	}

	stats := DayStats{
		Flights:      len(flights),
		WaitingTimes: waits,
		Overrun:      closing - a.OperatingWindow(),
	}
	if len(flights) > 0 {
		stats.WaitFraction = float64(len(waits)) / float64(len(flights))
	}
	return stats
}

// pick returns the runway for a flight arriving at arrival and whether it
// must queue there. queued implies freeAt[runway] > arrival.
func (a Airport) pick(freeAt []int64, arrival int64) (runway int, queued bool) {
	earliest := 0
	for r := 1; r < len(freeAt); r++ {
		if freeAt[r] < freeAt[earliest] {
			earliest = r
		}
	}
	if a.Precedence == PrecedenceEarliestFree {
		return earliest, freeAt[earliest] > arrival
	}
	for r, t := range freeAt {
		if arrival >= t {
			return r, false
		}
	}
	return earliest, true
}

// SimulateSingleRunway runs one day on a single runway over the default window.
func SimulateSingleRunway(flights []Flight) DayStats {
	return SingleRunway().SimulateDay(flights, nil)
}

// SimulateDualRunway runs one day on two runways with A-before-B precedence
// over the default window.
func SimulateDualRunway(flights []Flight) DayStats {
	return DualRunway().SimulateDay(flights, nil)
}
