package bellbench

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidPoints reports a non-positive sweep resolution.
var ErrInvalidPoints = errors.New("sweep point count must be positive")

// SweepConfig controls resolution and sampling effort of angle sweeps.
type SweepConfig struct {
	// Samples across the sweep range
	Points int `yaml:"points"`

	// Monte-Carlo trials per classical estimate. Sweeps use fewer trials
	// than a full Bell test: each point only has to place the curve, not
	// settle the inequality.
	TrialsPerPoint int `yaml:"trials_per_point"`
}

// DefaultSweepConfig returns the resolution used by the reference curves.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Points:         100,
		TrialsPerPoint: 1000,
	}
}

func (c SweepConfig) validate() error {
	if c.Points <= 0 {
		return fmt.Errorf("sweep: %w (got %d)", ErrInvalidPoints, c.Points)
	}
	if c.TrialsPerPoint <= 0 {
		return fmt.Errorf("sweep: %w (got %d)", ErrInvalidTrials, c.TrialsPerPoint)
	}
	return nil
}

// CorrelationPoint is one sample of the correlation-vs-angle-difference
// comparison curve.
type CorrelationPoint struct {
	Delta     float64 // Angle difference in radians
	Classical float64 // Monte-Carlo hidden-variable estimate
	Quantum   float64 // Closed-form singlet correlation
}

// BellPoint is one sample of the S-vs-base-angle curve.
type BellPoint struct {
	BaseAngle  float64
	SClassical float64
	SQuantum   float64
}

// CorrelationSweep samples both models' correlations over angle differences
// in [0, π]. The classical value at each point is an independent Monte-Carlo
// estimate; the quantum value is exact. The result is a plain numeric series
// for an external renderer.
func CorrelationSweep(rng *rand.Rand, cfg SweepConfig) ([]CorrelationPoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	points := make([]CorrelationPoint, 0, cfg.Points)

	for i := 0; i < cfg.Points; i++ {
		delta := 0.0
		if cfg.Points > 1 {
			delta = math.Pi * float64(i) / float64(cfg.Points-1)
		}

		classical, err := ClassicalCorrelation(rng, 0, delta, cfg.TrialsPerPoint)
		if err != nil {
			return nil, err
		}

		points = append(points, CorrelationPoint{
			Delta:     delta,
			Classical: classical,
			Quantum:   QuantumCorrelation(0, delta),
		})
	}

	return points, nil
}

// BellSweep samples the Bell parameter S for both models over base angles
// in [0, π/2]. Each base angle θ fixes the settings a=0, a'=θ, b=θ/2,
// b'=3θ/2, the family that contains the optimal CHSH configuration at
// θ=π/4.
func BellSweep(rng *rand.Rand, cfg SweepConfig) ([]BellPoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	points := make([]BellPoint, 0, cfg.Points)

	for i := 0; i < cfg.Points; i++ {
		base := 0.0
		if cfg.Points > 1 {
			base = math.Pi / 2 * float64(i) / float64(cfg.Points-1)
		}

		angles := Angles{
			A:      0,
			APrime: base,
			B:      base / 2,
			BPrime: 3 * base / 2,
		}

		classical, err := classicalCorrelations(rng, angles, cfg.TrialsPerPoint)
		if err != nil {
			return nil, err
		}

		points = append(points, BellPoint{
			BaseAngle:  base,
			SClassical: classical.S(),
			SQuantum:   quantumCorrelations(angles).S(),
		})
	}

	return points, nil
}
