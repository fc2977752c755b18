package sim

// DefaultOperatingWindow is the airport's daily operating window in seconds (13 hours).
const DefaultOperatingWindow int64 = 13 * 60 * 60

// Flight is a single landing request within one simulated day.
// Times are whole seconds relative to the opening of the operating window.
type Flight struct {
	ArrivalTime     int64 // when the aircraft is ready to land, in [0, window)
	ServiceDuration int64 // runway occupancy once landing starts
}

// Completion returns the time the runway is released if the flight lands on arrival.
func (f Flight) Completion() int64 {
	return f.ArrivalTime + f.ServiceDuration
}
