package trace

// TraceSummary aggregates statistics from a DayTrace.
type TraceSummary struct {
	TotalFlights       int         `json:"total_flights" yaml:"total_flights"`
	WaitedCount        int         `json:"waited_count" yaml:"waited_count"`
	MeanWait           *float64    `json:"mean_wait" yaml:"mean_wait"` // over waiting flights only; nil when none waited
	MaxWait            int64       `json:"max_wait" yaml:"max_wait"`
	RunwayDistribution map[int]int `json:"runway_distribution" yaml:"runway_distribution"` // runway index → flights landed
}

// Summarize computes aggregate statistics from a DayTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(dt *DayTrace) *TraceSummary {
	summary := &TraceSummary{
		RunwayDistribution: make(map[int]int),
	}
	if dt == nil {
		return summary
	}

	summary.TotalFlights = len(dt.Assignments)
	totalWait := int64(0)
	for _, a := range dt.Assignments {
		summary.RunwayDistribution[a.Runway]++
		if a.Wait > 0 {
			summary.WaitedCount++
			totalWait += a.Wait
			if a.Wait > summary.MaxWait {
				summary.MaxWait = a.Wait
			}
		}
	}
	if summary.WaitedCount > 0 {
		mean := float64(totalWait) / float64(summary.WaitedCount)
		summary.MeanWait = &mean
	}

	return summary
}
