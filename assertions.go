package bellbench

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for statistical properties.
type AssertionConfig struct {
	// Tolerance for closed-form comparisons (floating point only)
	ExactTolerance float64

	// Allowance above the classical bound for Monte-Carlo sampling noise.
	// A classical S slightly past 2 is a fluctuation, not a failure.
	ClassicalSlack float64

	// Maximum distance of the final six-frequency from 1/6
	FrequencyTolerance float64
}

// DefaultAssertionConfig returns tolerances sized for seeded runs with at
// least a few thousand samples.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		ExactTolerance:     1e-9,
		ClassicalSlack:     0.05,
		FrequencyTolerance: 0.03,
	}
}

// AssertCorrelationInBounds verifies a correlation value lies in [−1, 1].
// This is a hard bound of both models, not a statistical one.
func AssertCorrelationInBounds(t *testing.T, label string, e float64) {
	t.Helper()

	if math.IsNaN(e) || e < -1 || e > 1 {
		t.Errorf("%s = %v outside [−1, 1]\n"+
			"A correlation is a mean of ±1 products; it cannot leave the interval.",
			label, e)
		return
	}

	t.Logf("✓ %s = %.4f within [−1, 1]", label, e)
}

// AssertClassicalBound verifies the hidden-variable S respects the CHSH
// limit, modulo sampling noise.
func AssertClassicalBound(t *testing.T, c Correlations, cfg AssertionConfig) {
	t.Helper()

	s := c.S()
	limit := ClassicalBound + cfg.ClassicalSlack

	if s > limit {
		t.Errorf("Classical S = %.4f exceeds %.4f (bound %.1f + slack %.3f)\n"+
			"Either the estimator is broken or the slack is too tight for the trial count.",
			s, limit, ClassicalBound, cfg.ClassicalSlack)
		return
	}

	t.Logf("✓ Classical bound holds: S = %.4f ≤ %.4f", s, limit)
}

// AssertQuantumViolation verifies the quantum S exceeds the classical
// bound and stays at or below the Tsirelson bound.
func AssertQuantumViolation(t *testing.T, c Correlations) {
	t.Helper()

	s := c.S()

	if s <= ClassicalBound {
		t.Errorf("Quantum S = %.4f does not violate the classical bound %.1f\n"+
			"Check the measurement angles: violation requires a genuinely quantum configuration.",
			s, ClassicalBound)
		return
	}

	if s > TsirelsonBound+1e-9 {
		t.Errorf("Quantum S = %.4f exceeds the Tsirelson bound %.4f", s, TsirelsonBound)
		return
	}

	t.Logf("✓ Quantum violation: S = %.4f (classical limit %.1f, quantum limit %.4f)",
		s, ClassicalBound, TsirelsonBound)
}

// AssertFrequencyConvergence verifies the final running frequency landed
// near 1/6. Statistical: callers should seed their generator.
func AssertFrequencyConvergence(t *testing.T, freqs []float64, cfg AssertionConfig) {
	t.Helper()

	if len(freqs) == 0 {
		t.Errorf("No frequencies to check (empty sequence)")
		return
	}

	final := freqs[len(freqs)-1]
	dev := math.Abs(final - SixProbability)

	if dev > cfg.FrequencyTolerance {
		t.Errorf("Final frequency %.4f deviates from 1/6 by %.4f (max: %.4f)\n"+
			"With %d rolls this should be far inside the tolerance band.",
			final, dev, cfg.FrequencyTolerance, len(freqs))
		return
	}

	t.Logf("✓ Converged: frequency %.4f after %d rolls (theory %.4f, deviation %.4f)",
		final, len(freqs), SixProbability, dev)
}

// PrintBellAnalysis outputs the full run to the test log.
func PrintBellAnalysis(t *testing.T, r BellResult) {
	t.Helper()

	t.Logf("\n=== Bell Test Analysis ===")
	t.Logf("Angles: a=%.1f° a'=%.1f° b=%.1f° b'=%.1f°",
		degrees(r.Angles.A), degrees(r.Angles.APrime),
		degrees(r.Angles.B), degrees(r.Angles.BPrime))
	t.Logf("Trials per estimate: %d", r.Trials)

	t.Logf("\n            Classical   Quantum")
	t.Logf("  E(a,b)    %9.4f %9.4f", r.Classical.EAB, r.Quantum.EAB)
	t.Logf("  E(a,b')   %9.4f %9.4f", r.Classical.EABPrime, r.Quantum.EABPrime)
	t.Logf("  E(a',b)   %9.4f %9.4f", r.Classical.EAPrimeB, r.Quantum.EAPrimeB)
	t.Logf("  E(a',b')  %9.4f %9.4f", r.Classical.EAPrimeBPrime, r.Quantum.EAPrimeBPrime)
	t.Logf("  S         %9.4f %9.4f", r.Classical.S(), r.Quantum.S())

	t.Logf("\nLimits: classical %.3f, quantum %.4f", ClassicalBound, TsirelsonBound)
	t.Logf("Violation strength: %.1f%% of maximum", r.ViolationStrength())
}
