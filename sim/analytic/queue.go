// Package analytic gives closed-form queueing figures used as a sanity
// reference next to simulated results.
//
// Flights arrive as a Poisson process over the operating window, so a day
// behaves like an M/G/c queue with c runways. For c = 1 the mean delay is the
// Pollaczek–Khinchine formula; for c > 1 it is the Allen–Cunneen
// approximation built on Erlang C, which reduces to P-K at c = 1.
package analytic

import (
	"math"

	"github.com/runway-sim/runway-sim/sim"
)

// Queue describes a stationary M/G/c queue. Times are in seconds.
type Queue struct {
	ArrivalRate  float64 // flights per second
	MeanService  float64 // E[S]
	SecondMoment float64 // E[S²]
	Servers      int     // runways
}

// DailyQueue builds the queue seen by intensity flights spread uniformly over
// window seconds.
func DailyQueue(intensity float64, window int64, runways int, meanService, secondMoment float64) Queue {
	return Queue{
		ArrivalRate:  intensity / float64(window),
		MeanService:  meanService,
		SecondMoment: secondMoment,
		Servers:      runways,
	}
}

// OfferedLoad returns λ·E[S] in erlangs.
func (q Queue) OfferedLoad() float64 {
	return q.ArrivalRate * q.MeanService
}

// Utilization returns the per-runway load ρ = λ·E[S]/c.
func (q Queue) Utilization() float64 {
	if q.Servers < 1 {
		return math.Inf(1)
	}
	return q.OfferedLoad() / float64(q.Servers)
}

// Stable reports whether the queue has a steady state (ρ < 1).
func (q Queue) Stable() bool {
	return q.Utilization() < 1
}

// ProbWait returns the Erlang C probability that an arrival finds every
// runway busy. 1 when unstable.
func (q Queue) ProbWait() float64 {
	if !q.Stable() {
		return 1
	}
	a := q.OfferedLoad()
	c := q.Servers
	// term = a^k / k!, accumulated to avoid overflow of the factorial
	term, sum := 1.0, 0.0
	for k := 0; k < c; k++ {
		sum += term
		term *= a / float64(k+1)
	}
	tail := term / (1 - q.Utilization())
	return tail / (sum + tail)
}

// MeanQueueDelay returns the mean delay over all flights, or NoWaitData when
// the queue is unstable.
func (q Queue) MeanQueueDelay() sim.WaitMean {
	if q.ArrivalRate == 0 {
		return sim.MeanSeconds(0)
	}
	if !q.Stable() {
		return sim.NoWaitData
	}
	es := q.MeanService
	cs2 := (q.SecondMoment - es*es) / (es * es)
	mu := 1 / es
	c := float64(q.Servers)
	wq := q.ProbWait() / (c*mu - q.ArrivalRate) * (1 + cs2) / 2
	return sim.MeanSeconds(wq)
}

// MeanWaitGivenWait returns the mean delay of flights that wait at all,
// comparable with a simulated day's mean waiting time.
func (q Queue) MeanWaitGivenWait() sim.WaitMean {
	wq := q.MeanQueueDelay()
	pw := q.ProbWait()
	if !wq.Valid || pw == 0 {
		return sim.NoWaitData
	}
	return sim.MeanSeconds(wq.Seconds / pw)
}
