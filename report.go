package bellbench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// WriteBellReport writes the human-readable Bell-test summary. The exact
// wording is presentation; the numeric values and the violation judgments
// are what the run contractually produced.
func WriteBellReport(w io.Writer, r BellResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Bell's Inequality Test (%s trials per estimate)\n", humanize.Comma(int64(r.Trials)))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 50))

	fmt.Fprintf(&b, "Measurement angles:\n")
	fmt.Fprintf(&b, "  a = %5.1f°   a' = %5.1f°\n", degrees(r.Angles.A), degrees(r.Angles.APrime))
	fmt.Fprintf(&b, "  b = %5.1f°   b' = %5.1f°\n\n", degrees(r.Angles.B), degrees(r.Angles.BPrime))

	writeModel(&b, "Classical (hidden variables)", r.Classical)
	fmt.Fprintf(&b, "\n")
	writeModel(&b, "Quantum (singlet state)", r.Quantum)

	fmt.Fprintf(&b, "\nQuantum limit: S ≤ %.4f (2√2)\n", TsirelsonBound)
	fmt.Fprintf(&b, "Violation strength: %.1f%% of maximum possible\n", r.ViolationStrength())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeModel(b *strings.Builder, name string, c Correlations) {
	fmt.Fprintf(b, "%s:\n", name)
	fmt.Fprintf(b, "  E(a,b)   = %8.4f\n", c.EAB)
	fmt.Fprintf(b, "  E(a,b')  = %8.4f\n", c.EABPrime)
	fmt.Fprintf(b, "  E(a',b)  = %8.4f\n", c.EAPrimeB)
	fmt.Fprintf(b, "  E(a',b') = %8.4f\n", c.EAPrimeBPrime)
	fmt.Fprintf(b, "  S        = %8.4f  (classical limit: %.3f)\n", c.S(), ClassicalBound)

	if c.ViolatesClassicalBound() {
		fmt.Fprintf(b, "  Status: ✗ VIOLATES the classical bound\n")
	} else {
		fmt.Fprintf(b, "  Status: ✓ within the classical bound\n")
	}
}

// WriteFrequencyReport writes the law-of-large-numbers summary.
func WriteFrequencyReport(w io.Writer, s FrequencyStats) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Law of Large Numbers (%s rolls)\n", humanize.Comma(s.Rolls))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "  Sixes rolled:        %s\n", humanize.Comma(s.Sixes))
	fmt.Fprintf(&b, "  Relative frequency:  %.4f\n", s.Frequency)
	fmt.Fprintf(&b, "  Theoretical (1/6):   %.4f\n", s.Theoretical)
	fmt.Fprintf(&b, "  Deviation:           %.4f\n", s.Deviation)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCorrelationCSV emits the comparison curve as CSV.
func WriteCorrelationCSV(w io.Writer, points []CorrelationPoint) error {
	var b strings.Builder

	fmt.Fprintf(&b, "delta_rad,delta_deg,classical,quantum\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%.6f,%.2f,%.6f,%.6f\n", p.Delta, degrees(p.Delta), p.Classical, p.Quantum)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBellCSV emits the S-vs-base-angle curve as CSV.
func WriteBellCSV(w io.Writer, points []BellPoint) error {
	var b strings.Builder

	fmt.Fprintf(&b, "base_rad,base_deg,s_classical,s_quantum\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%.6f,%.2f,%.6f,%.6f\n", p.BaseAngle, degrees(p.BaseAngle), p.SClassical, p.SQuantum)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
