// Package bellbench demonstrates statistical laws numerically.
//
// # Overview
//
// bellbench contains two independent demonstrations:
//
//   - A Monte-Carlo Bell test contrasting local hidden-variable correlations
//     against quantum-mechanical correlations, showing violation of the CHSH
//     form of Bell's inequality.
//   - A law-of-large-numbers experiment tracking the running relative
//     frequency of rolling a six against the theoretical probability 1/6.
//
// # The CHSH Inequality
//
// Four correlation values between measurement angles combine into the Bell
// parameter S:
//
//	S = |E(a,b) − E(a,b') + E(a',b) + E(a',b')|
//
// Local hidden-variable theories bound S:
//
//	S ≤ 2         (classical bound)
//	S ≤ 2√2       (Tsirelson bound, quantum mechanics)
//
// The classical model draws one hidden orientation λ per trial, shared by
// both particles, and predetermines each outcome by the sign of
// cos(angle − λ). The quantum model uses the singlet-state closed form
// E(a,b) = −cos(a − b). At the measurement angles a=0, a'=π/4, b=π/8,
// b'=3π/8 the quantum S exceeds 2 while the classical S sits at the bound.
//
// # Quick Start
//
// Run the full Bell test with explicit randomness:
//
//	rng := bellbench.NewRand(42)
//
//	result, err := bellbench.RunBellTest(rng, bellbench.DefaultBellConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("S_classical = %.4f\n", result.Classical.S())
//	fmt.Printf("S_quantum   = %.4f\n", result.Quantum.S())
//	fmt.Printf("Violation:    %v\n", result.Quantum.ViolatesClassicalBound())
//
// Roll dice and watch the law of large numbers:
//
//	outcomes, _ := bellbench.RollDice(rng, 6000)
//	freqs := bellbench.ComputeFrequencies(outcomes)
//	fmt.Printf("final frequency = %.4f (theory: %.4f)\n",
//	    freqs[len(freqs)-1], bellbench.SixProbability)
//
// # Randomness
//
// Every sampling function takes an explicit *rand.Rand. There is no package
// level generator: a test that needs determinism seeds its own source with
// NewRand and no other test can disturb it.
//
// # Sweeps
//
// CorrelationSweep and BellSweep produce plain numeric series for external
// renderers: correlation as a function of angle difference, and S as a
// function of a base measurement angle. The package has no dependency on
// how, or whether, they are drawn.
//
// # Testing
//
// Assertion helpers validate statistical properties:
//
//	func TestMyRun(t *testing.T) {
//	    rng := bellbench.NewRand(1)
//	    result, _ := bellbench.RunBellTest(rng, bellbench.DefaultBellConfig())
//
//	    cfg := bellbench.DefaultAssertionConfig()
//	    bellbench.AssertClassicalBound(t, result.Classical, cfg)
//	    bellbench.AssertQuantumViolation(t, result.Quantum)
//	}
//
// # Philosophy
//
// Traditional quantum texts answer: "What does the math say?"
// bellbench answers: "What do the samples say?"
//
// The point is not speed. The point is watching an inequality hold for one
// model and break for the other, run after run.
package bellbench
