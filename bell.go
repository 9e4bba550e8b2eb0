package bellbench

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidTrials reports a non-positive Monte-Carlo trial count.
var ErrInvalidTrials = errors.New("trial count must be positive")

// ClassicalBound is the CHSH limit for local hidden-variable theories.
const ClassicalBound = 2.0

// TsirelsonBound is the quantum-mechanical limit 2√2 for the Bell
// parameter S. Reported for context, never enforced.
const TsirelsonBound = 2 * math.Sqrt2

// SixProbability is the theoretical probability of rolling a six.
const SixProbability = 1.0 / 6.0

// Angles holds the four CHSH measurement orientations in radians.
type Angles struct {
	A      float64 // Alice, first setting
	APrime float64 // Alice, second setting
	B      float64 // Bob, first setting
	BPrime float64 // Bob, second setting
}

// OptimalAngles returns the measurement angles that maximize the quantum
// violation for the singlet state: a=0°, a'=45°, b=22.5°, b'=67.5°.
func OptimalAngles() Angles {
	return Angles{
		A:      0,
		APrime: math.Pi / 4,
		B:      math.Pi / 8,
		BPrime: 3 * math.Pi / 8,
	}
}

// BellConfig controls a Bell-test run.
type BellConfig struct {
	// Monte-Carlo trials per classical correlation estimate
	Trials int

	// Measurement orientations for both parties
	Angles Angles
}

// DefaultBellConfig returns the canonical test setup.
func DefaultBellConfig() BellConfig {
	return BellConfig{
		Trials: 10000,
		Angles: OptimalAngles(),
	}
}

// Correlations holds the four correlation values of one model.
type Correlations struct {
	EAB           float64 // E(a, b)
	EABPrime      float64 // E(a, b')
	EAPrimeB      float64 // E(a', b)
	EAPrimeBPrime float64 // E(a', b')
}

// S returns the Bell parameter:
//
//	S = |E(a,b) − E(a,b') + E(a',b) + E(a',b')|
func (c Correlations) S() float64 {
	return math.Abs(c.EAB - c.EABPrime + c.EAPrimeB + c.EAPrimeBPrime)
}

// ViolatesClassicalBound reports whether S exceeds the classical limit 2.
func (c Correlations) ViolatesClassicalBound() bool {
	return c.S() > ClassicalBound
}

// BellResult contains both models' correlations for one run.
type BellResult struct {
	Angles    Angles
	Trials    int
	Classical Correlations
	Quantum   Correlations
}

// ViolationStrength returns the quantum violation as a percentage of the
// maximum possible: (S − 2) / (2√2 − 2) · 100. Negative when S ≤ 2.
func (r BellResult) ViolationStrength() float64 {
	return (r.Quantum.S() - ClassicalBound) / (TsirelsonBound - ClassicalBound) * 100
}

// ClassicalCorrelation estimates the hidden-variable correlation between
// measurements at angleA and angleB by Monte-Carlo sampling.
//
// Each trial draws one orientation λ uniformly from [0, 2π). The same λ
// predetermines both outcomes: result = +1 if cos(angle − λ) > 0, else −1.
// Sharing λ between the two outcomes is the point of the model; sampling
// two independent λ's would change the correlation's shape.
//
// The estimate lies in [−1, 1] and converges to the model expectation with
// statistical error on the order of 1/√trials.
func ClassicalCorrelation(rng *rand.Rand, angleA, angleB float64, trials int) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("classical correlation: %w (got %d)", ErrInvalidTrials, trials)
	}

	sum := 0
	for i := 0; i < trials; i++ {
		lambda := rng.Float64() * 2 * math.Pi

		resultA := outcomeSign(angleA - lambda)
		resultB := outcomeSign(angleB - lambda)

		sum += resultA * resultB
	}

	return float64(sum) / float64(trials), nil
}

// outcomeSign is the predetermined measurement result for an angle offset
// from the hidden orientation.
func outcomeSign(offset float64) int {
	if math.Cos(offset) > 0 {
		return 1
	}
	return -1
}

// QuantumCorrelation returns the singlet-state correlation between
// measurements at angleA and angleB:
//
//	E(a, b) = −cos(a − b)
//
// Deterministic and total over all reals; the result lies in [−1, 1].
func QuantumCorrelation(angleA, angleB float64) float64 {
	return -math.Cos(angleA - angleB)
}

// RunBellTest computes the four CHSH correlations under both models and
// the resulting Bell parameters.
//
// The classical correlations are four independent Monte-Carlo estimates,
// each using cfg.Trials samples from rng. The quantum correlations are
// closed-form. Sampling noise can push the classical S slightly past 2;
// that is a statistical fluctuation, not a violation.
func RunBellTest(rng *rand.Rand, cfg BellConfig) (BellResult, error) {
	if cfg.Trials <= 0 {
		return BellResult{}, fmt.Errorf("bell test: %w (got %d)", ErrInvalidTrials, cfg.Trials)
	}

	a := cfg.Angles

	classical, err := classicalCorrelations(rng, a, cfg.Trials)
	if err != nil {
		return BellResult{}, err
	}

	return BellResult{
		Angles:    a,
		Trials:    cfg.Trials,
		Classical: classical,
		Quantum:   quantumCorrelations(a),
	}, nil
}

func classicalCorrelations(rng *rand.Rand, a Angles, trials int) (Correlations, error) {
	var c Correlations
	var err error

	if c.EAB, err = ClassicalCorrelation(rng, a.A, a.B, trials); err != nil {
		return Correlations{}, err
	}
	if c.EABPrime, err = ClassicalCorrelation(rng, a.A, a.BPrime, trials); err != nil {
		return Correlations{}, err
	}
	if c.EAPrimeB, err = ClassicalCorrelation(rng, a.APrime, a.B, trials); err != nil {
		return Correlations{}, err
	}
	if c.EAPrimeBPrime, err = ClassicalCorrelation(rng, a.APrime, a.BPrime, trials); err != nil {
		return Correlations{}, err
	}

	return c, nil
}

func quantumCorrelations(a Angles) Correlations {
	return Correlations{
		EAB:           QuantumCorrelation(a.A, a.B),
		EABPrime:      QuantumCorrelation(a.A, a.BPrime),
		EAPrimeB:      QuantumCorrelation(a.APrime, a.B),
		EAPrimeBPrime: QuantumCorrelation(a.APrime, a.BPrime),
	}
}
