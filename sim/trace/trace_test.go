package trace

import (
	"testing"
)

func TestDayTrace_RecordAssignment_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for assignments
	dt := NewDayTrace(TraceLevelAssignments)

	// WHEN an assignment record is recorded
	dt.RecordAssignment(AssignmentRecord{
		FlightIndex: 0,
		Arrival:     100,
		Service:     60,
		Runway:      0,
		Reason:      ReasonRunwayFree,
	})

	// THEN the trace contains one record with correct data
	if len(dt.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(dt.Assignments))
	}
	if dt.Assignments[0].Arrival != 100 {
		t.Errorf("expected arrival 100, got %d", dt.Assignments[0].Arrival)
	}
	if dt.Assignments[0].Reason != ReasonRunwayFree {
		t.Errorf("expected reason %q, got %q", ReasonRunwayFree, dt.Assignments[0].Reason)
	}
}

func TestDayTrace_LevelNone_DropsRecords(t *testing.T) {
	// GIVEN a disabled trace
	dt := NewDayTrace(TraceLevelNone)

	// WHEN a record is offered
	dt.RecordAssignment(AssignmentRecord{FlightIndex: 0, Arrival: 1})

	// THEN nothing is kept
	if len(dt.Assignments) != 0 {
		t.Errorf("expected no assignments at level none, got %d", len(dt.Assignments))
	}
}

func TestDayTrace_Nil_IsSafe(t *testing.T) {
	var dt *DayTrace
	if dt.Enabled() {
		t.Error("nil trace must report disabled")
	}
	dt.RecordAssignment(AssignmentRecord{FlightIndex: 3})
}

func TestDayTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	dt := NewDayTrace(TraceLevelAssignments)

	// WHEN multiple records are added
	dt.RecordAssignment(AssignmentRecord{FlightIndex: 0, Arrival: 100})
	dt.RecordAssignment(AssignmentRecord{FlightIndex: 1, Arrival: 150, Wait: 10, Reason: ReasonQueuedFirst})
	dt.RecordAssignment(AssignmentRecord{FlightIndex: 2, Arrival: 400})

	// THEN order matches insertion
	for i, a := range dt.Assignments {
		if a.FlightIndex != i {
			t.Errorf("record %d: flight index %d", i, a.FlightIndex)
		}
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"assignments", true},
		{"", true},
		{"decisions", false},
		{"ALL", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
