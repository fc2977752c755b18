package trace

// TraceLevel controls the verbosity of assignment tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelAssignments captures every runway assignment.
	TraceLevelAssignments TraceLevel = "assignments"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelAssignments: true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// DayTrace collects assignment records during one simulated day.
// A nil *DayTrace is valid and records nothing.
type DayTrace struct {
	Level       TraceLevel
	Assignments []AssignmentRecord
}

// NewDayTrace creates a DayTrace ready for recording.
func NewDayTrace(level TraceLevel) *DayTrace {
	return &DayTrace{
		Level:       level,
		Assignments: make([]AssignmentRecord, 0),
	}
}

// Enabled reports whether records passed to RecordAssignment are kept.
func (dt *DayTrace) Enabled() bool {
	return dt != nil && dt.Level == TraceLevelAssignments
}

// RecordAssignment appends an assignment record.
func (dt *DayTrace) RecordAssignment(record AssignmentRecord) {
	if !dt.Enabled() {
		return
	}
	dt.Assignments = append(dt.Assignments, record)
}
