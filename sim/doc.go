// Package sim provides the core of the airport landing simulation.
//
// # Reading Guide
//
//   - flight.go: Flight, the unit of work (arrival time + runway occupancy)
//   - runway.go: Airport and the day simulators (single, dual, N runways)
//   - stats.go: DayStats and the WaitMean no-data marker
//   - rng.go: SimulationKey and per-day RNG streams
//
// # Architecture
//
// The sim package holds the data model and the deterministic day simulators;
// everything stochastic or multi-day lives in sub-packages:
//   - sim/workload/: daily flight generation (Poisson count, uniform arrivals,
//     empirical service-time buckets)
//   - sim/forecast/: multi-day aggregation and the multi-year growth driver
//   - sim/trace/: per-flight runway assignment records
//   - sim/report/: year summaries and histograms for downstream plotting
//   - sim/analytic/: M/G/c reference figures
//
// A day simulator is a pure function of its flight list. All randomness is
// drawn from RNG streams derived from a SimulationKey, one stream per
// simulated (year, day), so results do not depend on execution order.
package sim
