package bellbench

import (
	"errors"
	"math"
	"testing"
)

// TestRollDice_Empty verifies n = 0 yields an empty sequence.
func TestRollDice_Empty(t *testing.T) {
	rng := NewRand(1)

	outcomes, err := RollDice(rng, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 0 {
		t.Errorf("RollDice(0) returned %d outcomes, want 0", len(outcomes))
	}
}

// TestRollDice_Negative verifies fail-fast on a negative count.
func TestRollDice_Negative(t *testing.T) {
	rng := NewRand(1)

	_, err := RollDice(rng, -5)
	if !errors.Is(err, ErrInvalidRolls) {
		t.Errorf("expected ErrInvalidRolls, got %v", err)
	}
}

// TestRollDice_Range verifies every outcome lands in [1, 6] and, over a
// seeded run, every face actually shows up.
func TestRollDice_Range(t *testing.T) {
	rng := NewRand(21)

	outcomes, err := RollDice(rng, 10000)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]int)
	for i, o := range outcomes {
		if o < 1 || o > 6 {
			t.Fatalf("outcome[%d] = %d outside [1, 6]", i, o)
		}
		seen[o]++
	}

	for face := 1; face <= 6; face++ {
		if seen[face] == 0 {
			t.Errorf("face %d never rolled in 10000 draws (generator suspicious)", face)
		}
	}

	t.Logf("✓ Face counts over 10000 rolls: %v", seen)
}

// TestComputeFrequencies_Empty verifies the empty-in empty-out edge.
func TestComputeFrequencies_Empty(t *testing.T) {
	if got := ComputeFrequencies(nil); len(got) != 0 {
		t.Errorf("ComputeFrequencies(nil) returned %d elements, want 0", len(got))
	}
	if got := ComputeFrequencies([]int{}); len(got) != 0 {
		t.Errorf("ComputeFrequencies([]) returned %d elements, want 0", len(got))
	}
}

// TestComputeFrequencies_Known verifies the running ratio by hand.
func TestComputeFrequencies_Known(t *testing.T) {
	outcomes := []int{6, 1, 6, 2, 3, 6}
	want := []float64{1, 0.5, 2.0 / 3.0, 0.5, 0.4, 0.5}

	got := ComputeFrequencies(outcomes)
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("freqs[%d] = %.6f, want %.6f", i, got[i], want[i])
		}
	}
}

// TestComputeFrequencies_Bounds verifies every running frequency lies in
// [0, 1].
func TestComputeFrequencies_Bounds(t *testing.T) {
	rng := NewRand(23)

	outcomes, err := RollDice(rng, 5000)
	if err != nil {
		t.Fatal(err)
	}

	for i, f := range ComputeFrequencies(outcomes) {
		if f < 0 || f > 1 {
			t.Fatalf("freqs[%d] = %v outside [0, 1]", i, f)
		}
	}
}

// TestLawOfLargeNumbers_Convergence verifies the final frequency after
// 6000 seeded rolls lands within ±0.03 of 1/6. The standard deviation at
// n=6000 is ≈0.005, so the band is wide enough that only a broken
// generator fails it.
func TestLawOfLargeNumbers_Convergence(t *testing.T) {
	rng := NewRand(42)

	outcomes, err := RollDice(rng, 6000)
	if err != nil {
		t.Fatal(err)
	}

	freqs := ComputeFrequencies(outcomes)
	AssertFrequencyConvergence(t, freqs, DefaultAssertionConfig())
}

// TestFrequencyTracker_MatchesBatch verifies the incremental tracker and
// the batch computation agree on the final frequency.
func TestFrequencyTracker_MatchesBatch(t *testing.T) {
	rng := NewRand(31)

	outcomes, err := RollDice(rng, 2000)
	if err != nil {
		t.Fatal(err)
	}

	tracker := NewFrequencyTracker()
	for _, o := range outcomes {
		if err := tracker.Record(o); err != nil {
			t.Fatal(err)
		}
	}

	freqs := ComputeFrequencies(outcomes)
	batchFinal := freqs[len(freqs)-1]

	if math.Abs(tracker.Frequency()-batchFinal) > 1e-12 {
		t.Errorf("tracker frequency %.6f != batch frequency %.6f", tracker.Frequency(), batchFinal)
	}
	if tracker.Rolls() != int64(len(outcomes)) {
		t.Errorf("tracker rolls = %d, want %d", tracker.Rolls(), len(outcomes))
	}
}

// TestFrequencyTracker_RejectsBadOutcome verifies range checking.
func TestFrequencyTracker_RejectsBadOutcome(t *testing.T) {
	tracker := NewFrequencyTracker()

	for _, bad := range []int{0, 7, -1, 100} {
		if err := tracker.Record(bad); err == nil {
			t.Errorf("Record(%d) accepted an outcome outside [1, 6]", bad)
		}
	}

	if tracker.Rolls() != 0 {
		t.Errorf("rejected outcomes were still counted: rolls = %d", tracker.Rolls())
	}
}

// TestFrequencyTracker_Stats verifies the snapshot fields.
func TestFrequencyTracker_Stats(t *testing.T) {
	tracker := NewFrequencyTracker()

	empty := tracker.Stats()
	if empty.Rolls != 0 || empty.Frequency != 0 {
		t.Errorf("empty tracker stats = %+v, want zero rolls and frequency", empty)
	}

	for _, o := range []int{6, 6, 1, 2} {
		if err := tracker.Record(o); err != nil {
			t.Fatal(err)
		}
	}

	s := tracker.Stats()
	if s.Rolls != 4 || s.Sixes != 2 {
		t.Errorf("stats = %+v, want 4 rolls and 2 sixes", s)
	}
	if math.Abs(s.Frequency-0.5) > 1e-12 {
		t.Errorf("frequency = %v, want 0.5", s.Frequency)
	}
	if math.Abs(s.Deviation-(0.5-SixProbability)) > 1e-12 {
		t.Errorf("deviation = %v, want %v", s.Deviation, 0.5-SixProbability)
	}
	if s.Theoretical != SixProbability {
		t.Errorf("theoretical = %v, want %v", s.Theoretical, SixProbability)
	}
}
