package bellbench

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// ErrInvalidRolls reports a negative die-roll count.
var ErrInvalidRolls = errors.New("roll count must be non-negative")

// RollDice draws n independent, uniformly distributed die outcomes in
// [1, 6]. n = 0 yields an empty sequence.
func RollDice(rng *rand.Rand, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("roll dice: %w (got %d)", ErrInvalidRolls, n)
	}

	outcomes := make([]int, n)
	for i := range outcomes {
		outcomes[i] = rng.IntN(6) + 1
	}

	return outcomes, nil
}

// ComputeFrequencies returns the running relative frequency of sixes:
// element i is the count of sixes in outcomes[0..i] divided by i+1.
//
// The sequence converges toward 1/6 as the index grows, but no convergence
// is asserted here. That observation belongs to the consumer.
func ComputeFrequencies(outcomes []int) []float64 {
	freqs := make([]float64, len(outcomes))

	sixes := 0
	for i, outcome := range outcomes {
		if outcome == 6 {
			sixes++
		}
		freqs[i] = float64(sixes) / float64(i+1)
	}

	return freqs
}

// FrequencyTracker accumulates die outcomes one roll at a time and exposes
// the running relative frequency of sixes.
//
// THE LAW OF LARGE NUMBERS, LIVE:
//
// After a handful of rolls the frequency swings wildly; after thousands it
// pins itself to 1/6. The tracker exists so a renderer can watch that
// happen frame by frame while the computation stays a plain fold over
// outcomes.
//
// Example:
//
//	tracker := NewFrequencyTracker()
//
//	for i := 0; i < 6000; i++ {
//	    tracker.Record(rng.IntN(6) + 1)
//	}
//
//	if tracker.Deviation() < 0.01 {
//	    // Empirical frequency within 1% of theory
//	}
type FrequencyTracker struct {
	mu    sync.RWMutex
	rolls int64
	sixes int64
}

// NewFrequencyTracker creates an empty tracker.
func NewFrequencyTracker() *FrequencyTracker {
	return &FrequencyTracker{}
}

// Record adds one die outcome. Outcomes outside [1, 6] are rejected.
func (t *FrequencyTracker) Record(outcome int) error {
	if outcome < 1 || outcome > 6 {
		return fmt.Errorf("record outcome: %d outside [1, 6]", outcome)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rolls++
	if outcome == 6 {
		t.sixes++
	}

	return nil
}

// Rolls returns the number of outcomes recorded so far.
func (t *FrequencyTracker) Rolls() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rolls
}

// Sixes returns the number of sixes recorded so far.
func (t *FrequencyTracker) Sixes() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sixes
}

// Frequency returns the running relative frequency of sixes, or 0 before
// any roll.
func (t *FrequencyTracker) Frequency() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.rolls == 0 {
		return 0
	}
	return float64(t.sixes) / float64(t.rolls)
}

// Deviation returns |frequency − 1/6|, the distance from theory.
func (t *FrequencyTracker) Deviation() float64 {
	return math.Abs(t.Frequency() - SixProbability)
}

// FrequencyStats is a snapshot of the tracker.
type FrequencyStats struct {
	Rolls       int64
	Sixes       int64
	Frequency   float64
	Theoretical float64
	Deviation   float64
}

// Stats returns a consistent snapshot of the running experiment.
func (t *FrequencyTracker) Stats() FrequencyStats {
	t.mu.RLock()
	rolls, sixes := t.rolls, t.sixes
	t.mu.RUnlock()

	freq := 0.0
	if rolls > 0 {
		freq = float64(sixes) / float64(rolls)
	}

	return FrequencyStats{
		Rolls:       rolls,
		Sixes:       sixes,
		Frequency:   freq,
		Theoretical: SixProbability,
		Deviation:   math.Abs(freq - SixProbability),
	}
}
