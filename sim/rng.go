package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two studies with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Stream returns a freshly seeded RNG for the named subsystem.
//
// Derivation: PCG seeded with (key, fnv1a64(name)). The result is never
// cached, so callers on different goroutines each own their stream.
func (k SimulationKey) Stream(name string) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(k), uint64(fnv1a64(name))))
}

// === Subsystems ===

// SubsystemDay returns the subsystem name for a simulated day.
// Every (year, day) pair owns an independent stream, so the flights of a day
// do not depend on how many days ran before it or on which worker ran it.
func SubsystemDay(year, day int) string {
	return fmt.Sprintf("day_%d_%d", year, day)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
