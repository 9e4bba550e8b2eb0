package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexshd/bellbench"
)

const (
	chartWidth  = 60
	chartHeight = 16
)

// animateFrequencies replays the precomputed series, one new chart column
// per frame. The series is final before the first frame; the delay is
// purely cosmetic.
func animateFrequencies(w io.Writer, freqs []float64, interval time.Duration) {
	for frame := 1; frame <= chartWidth; frame++ {
		upTo := len(freqs) * frame / chartWidth
		if upTo < 1 {
			upTo = 1
		}

		fmt.Fprint(w, "\033[H\033[2J")
		fmt.Fprint(w, renderFrequencyChart(freqs[:upTo]))
		fmt.Fprintf(w, "rolls: %d   frequency: %.4f   theory: %.4f\n",
			upTo, freqs[upTo-1], bellbench.SixProbability)

		time.Sleep(interval)
	}
}

// renderFrequencyChart draws the running frequency on a fixed character
// grid with the theoretical 1/6 line dotted across it. Frequencies live
// in [0, 1], so the vertical axis does too.
func renderFrequencyChart(freqs []float64) string {
	grid := make([][]rune, chartHeight)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", chartWidth))
	}

	theoryRow := rowFor(bellbench.SixProbability)
	for c := 0; c < chartWidth; c++ {
		grid[theoryRow][c] = '-'
	}

	for c := 0; c < chartWidth; c++ {
		i := 0
		if len(freqs) > 1 {
			i = (len(freqs) - 1) * c / (chartWidth - 1)
		}
		grid[rowFor(freqs[i])][c] = '*'
	}

	var b strings.Builder
	b.WriteString("relative frequency of rolling a six\n")
	for r, row := range grid {
		b.WriteString("  |")
		b.WriteString(string(row))
		switch r {
		case 0:
			b.WriteString(" 1.0")
		case theoryRow:
			b.WriteString(" 1/6")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  +" + strings.Repeat("-", chartWidth) + "\n")

	return b.String()
}

// rowFor maps a frequency in [0, 1] to a grid row, top row = 1.0.
func rowFor(v float64) int {
	row := chartHeight - 1 - int(v*float64(chartHeight-1)+0.5)
	if row < 0 {
		row = 0
	}
	if row >= chartHeight {
		row = chartHeight - 1
	}
	return row
}
