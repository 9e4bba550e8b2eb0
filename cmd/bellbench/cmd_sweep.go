package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexshd/bellbench"
	"github.com/spf13/cobra"
)

func newSweepCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Emit correlation or Bell-parameter curves as CSV",
		Long: `Samples both models across a range of angles and writes the series as
CSV for an external plotter. By default the correlation-vs-angle-difference
comparison curve; with --bell, the S-vs-base-angle curve instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			sweepCfg := cfg.Sweep
			if cmd.Flags().Changed("points") {
				sweepCfg.Points, _ = cmd.Flags().GetInt("points")
			}
			if cmd.Flags().Changed("trials-per-point") {
				sweepCfg.TrialsPerPoint, _ = cmd.Flags().GetInt("trials-per-point")
			}
			bellCurve, _ := cmd.Flags().GetBool("bell")
			outPath, _ := cmd.Flags().GetString("out")

			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			logger.Info("starting sweep",
				"bell_curve", bellCurve,
				"points", sweepCfg.Points,
				"trials_per_point", sweepCfg.TrialsPerPoint,
				"seed", cfg.Seed)

			rng := bellbench.NewRand(cfg.Seed)

			if bellCurve {
				points, err := bellbench.BellSweep(rng, sweepCfg)
				if err != nil {
					return err
				}
				return bellbench.WriteBellCSV(out, points)
			}

			points, err := bellbench.CorrelationSweep(rng, sweepCfg)
			if err != nil {
				return err
			}
			return bellbench.WriteCorrelationCSV(out, points)
		},
	}

	cmd.Flags().Int("points", 0, "Samples across the sweep range")
	cmd.Flags().Int("trials-per-point", 0, "Monte-Carlo trials per classical estimate")
	cmd.Flags().Bool("bell", false, "Sweep the Bell parameter S instead of correlations")
	cmd.Flags().String("out", "", "Write CSV to a file instead of stdout")

	return cmd
}
