package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runway-sim/runway-sim/sim/internal/testutil"
	"github.com/runway-sim/runway-sim/sim/trace"
)

func TestSimulateSingleRunway_TwoFlightScenario(t *testing.T) {
	// GIVEN flights (100, 60) and (150, 90) on one runway
	flights := []Flight{
		{ArrivalTime: 100, ServiceDuration: 60},
		{ArrivalTime: 150, ServiceDuration: 90},
	}

	// WHEN the day is simulated
	stats := SimulateSingleRunway(flights)

	// THEN flight 2 waits 10s behind flight 1 and the runway closes at 250
	assert.Equal(t, []int64{10}, stats.WaitingTimes)
	assert.Equal(t, 0.5, stats.WaitFraction)
	assert.Equal(t, int64(250-46800), stats.Overrun)
	assert.Equal(t, 2, stats.Flights)
}

func TestSimulateSingleRunway_QueueAdvancesAdditively(t *testing.T) {
	// GIVEN three flights arriving while the runway is busy
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100},
		{ArrivalTime: 10, ServiceDuration: 100},
		{ArrivalTime: 20, ServiceDuration: 100},
	}

	// WHEN simulated
	stats := SimulateSingleRunway(flights)

	// THEN each waits for the cumulative free-at time
	assert.Equal(t, []int64{90, 180}, stats.WaitingTimes)
	assert.Equal(t, int64(300-DefaultOperatingWindow), stats.Overrun)
}

func TestSimulateSingleRunway_ArrivalAtFreeAt_DoesNotWait(t *testing.T) {
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 50},
		{ArrivalTime: 50, ServiceDuration: 50},
	}
	stats := SimulateSingleRunway(flights)
	assert.Empty(t, stats.WaitingTimes)
	assert.Equal(t, 0.0, stats.WaitFraction)
}

func TestSimulateSingleRunway_NoQueueing_OverrunFromLastFlight(t *testing.T) {
	// GIVEN spaced-out flights
	flights := []Flight{
		{ArrivalTime: 1000, ServiceDuration: 60},
		{ArrivalTime: 5000, ServiceDuration: 200},
		{ArrivalTime: 46700, ServiceDuration: 150},
	}

	// WHEN simulated
	stats := SimulateSingleRunway(flights)

	// THEN nobody waits and overrun = last arrival + its service - window
	assert.Equal(t, 0.0, stats.WaitFraction)
	assert.Equal(t, int64(46700+150-46800), stats.Overrun)
}

func TestSimulateDay_EmptyDay_NoDivisionByZero(t *testing.T) {
	for _, a := range []Airport{SingleRunway(), DualRunway()} {
		stats := a.SimulateDay(nil, nil)
		assert.Equal(t, 0, stats.Flights)
		assert.Equal(t, 0.0, stats.WaitFraction)
		assert.Equal(t, -DefaultOperatingWindow, stats.Overrun)
		assert.False(t, stats.MeanWait().Valid)
	}
}

func TestSimulateDualRunway_RunwayAFirst_EvenWhenBIsFree(t *testing.T) {
	// GIVEN runway A released at 100 and B idle
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100},   // A: free-at 100
		{ArrivalTime: 200, ServiceDuration: 100}, // A free again (A checked first)
	}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)

	// WHEN simulated
	stats := DualRunway().SimulateDay(flights, dt)

	// THEN both flights land on A without waiting
	require.Len(t, dt.Assignments, 2)
	assert.Equal(t, 0, dt.Assignments[0].Runway)
	assert.Equal(t, 0, dt.Assignments[1].Runway)
	assert.Empty(t, stats.WaitingTimes)
	assert.Equal(t, int64(300-DefaultOperatingWindow), stats.Overrun)
}

func TestSimulateDualRunway_ABusy_GoesToB(t *testing.T) {
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100},
		{ArrivalTime: 50, ServiceDuration: 100},
	}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)
	stats := DualRunway().SimulateDay(flights, dt)

	assert.Equal(t, 1, dt.Assignments[1].Runway)
	assert.Empty(t, stats.WaitingTimes)
	// later-closing runway is B at 150
	assert.Equal(t, int64(150-DefaultOperatingWindow), stats.Overrun)
}

func TestSimulateDualRunway_BothBusy_EarlierRunwayTakesFlight(t *testing.T) {
	// GIVEN A busy until 100 and B busy until 80
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100}, // A → 100
		{ArrivalTime: 20, ServiceDuration: 60}, // B → 80
		{ArrivalTime: 30, ServiceDuration: 40}, // both busy, B earlier: wait 50, B → 120
		{ArrivalTime: 40, ServiceDuration: 10}, // both busy, A (100) earlier than B (120): wait 60, A → 110
	}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)

	// WHEN simulated
	stats := DualRunway().SimulateDay(flights, dt)

	// THEN waits are recorded against the earlier runway
	assert.Equal(t, []int64{50, 60}, stats.WaitingTimes)
	assert.Equal(t, 1, dt.Assignments[2].Runway)
	assert.Equal(t, 0, dt.Assignments[3].Runway)
	assert.Equal(t, trace.ReasonQueuedFirst, dt.Assignments[3].Reason)
	assert.Equal(t, 0.5, stats.WaitFraction)
	assert.Equal(t, int64(120-DefaultOperatingWindow), stats.Overrun)
}

func TestSimulateDualRunway_BothBusyTie_FavorsA(t *testing.T) {
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100}, // A → 100
		{ArrivalTime: 10, ServiceDuration: 90}, // B → 100
		{ArrivalTime: 20, ServiceDuration: 30}, // tie → A, wait 80
	}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)
	stats := DualRunway().SimulateDay(flights, dt)
	assert.Equal(t, 0, dt.Assignments[2].Runway)
	assert.Equal(t, []int64{80}, stats.WaitingTimes)
}

func TestEarliestFree_PicksLeastLoadedEvenWhenAIsFree(t *testing.T) {
	// GIVEN A released at 100 and B at 50; a flight at 200 finds both free
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100},
		{ArrivalTime: 10, ServiceDuration: 40},
		{ArrivalTime: 200, ServiceDuration: 10},
	}
	a := Airport{Runways: 2, Precedence: PrecedenceEarliestFree}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)
	a.SimulateDay(flights, dt)

	// THEN first-free would pick A, earliest-free picks B
	assert.Equal(t, 1, dt.Assignments[2].Runway)

	dt2 := trace.NewDayTrace(trace.TraceLevelAssignments)
	DualRunway().SimulateDay(flights, dt2)
	assert.Equal(t, 0, dt2.Assignments[2].Runway)
}

func TestSimulateDay_ThreeRunways_IndexOrder(t *testing.T) {
	flights := []Flight{
		{ArrivalTime: 0, ServiceDuration: 100},
		{ArrivalTime: 1, ServiceDuration: 100},
		{ArrivalTime: 2, ServiceDuration: 100},
		{ArrivalTime: 3, ServiceDuration: 100},
	}
	dt := trace.NewDayTrace(trace.TraceLevelAssignments)
	stats := Airport{Runways: 3}.SimulateDay(flights, dt)

	runways := []int{}
	for _, a := range dt.Assignments {
		runways = append(runways, a.Runway)
	}
	assert.Equal(t, []int{0, 1, 2, 0}, runways)
	assert.Equal(t, []int64{97}, stats.WaitingTimes)
}

func TestSimulateDay_CustomWindow_Overrun(t *testing.T) {
	a := Airport{Runways: 1, Window: 3600}
	stats := a.SimulateDay([]Flight{{ArrivalTime: 3590, ServiceDuration: 60}}, nil)
	assert.Equal(t, int64(50), stats.Overrun)
}

func TestSimulateDay_ZeroRunways_Panics(t *testing.T) {
	assert.Panics(t, func() { Airport{}.SimulateDay(nil, nil) })
}

func TestAirport_Validate(t *testing.T) {
	assert.NoError(t, SingleRunway().Validate())
	assert.NoError(t, DualRunway().Validate())
	assert.NoError(t, Airport{Runways: 4}.Validate())

	for _, a := range []Airport{
		{Runways: 0},
		{Runways: 2, Precedence: "random"},
		{Runways: 1, Window: -5},
	} {
		err := a.Validate()
		if !errors.Is(err, ErrInvalidAirport) {
			t.Errorf("%+v: expected ErrInvalidAirport, got %v", a, err)
		}
	}
}

func TestIsValidPrecedence(t *testing.T) {
	assert.True(t, IsValidPrecedence("first-free"))
	assert.True(t, IsValidPrecedence("earliest-free"))
	assert.True(t, IsValidPrecedence(""))
	assert.False(t, IsValidPrecedence("round-robin"))
}

func TestSimulateDay_DayScenarios(t *testing.T) {
	set := testutil.LoadDayScenarios(t)
	for _, sc := range set.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			// GIVEN the scenario's flight list
			flights := make([]Flight, len(sc.Flights))
			for i, f := range sc.Flights {
				flights[i] = Flight{ArrivalTime: f[0], ServiceDuration: f[1]}
			}

			// WHEN simulated on one and on two runways
			single := SimulateSingleRunway(flights)
			dual := SimulateDualRunway(flights)

			// THEN both match the hand-computed outcome
			assert.Equal(t, sc.Single.WaitingTimes, single.WaitingTimes, "single waits")
			testutil.AssertFloat64Equal(t, "single wait fraction", sc.Single.WaitFraction, single.WaitFraction, 1e-12)
			assert.Equal(t, sc.Single.Overrun, single.Overrun, "single overrun")

			assert.Equal(t, sc.Dual.WaitingTimes, dual.WaitingTimes, "dual waits")
			testutil.AssertFloat64Equal(t, "dual wait fraction", sc.Dual.WaitFraction, dual.WaitFraction, 1e-12)
			assert.Equal(t, sc.Dual.Overrun, dual.Overrun, "dual overrun")
		})
	}
}
