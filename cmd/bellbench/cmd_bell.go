package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/bellbench"
	"github.com/spf13/cobra"
)

func newBellCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bell",
		Short: "Run the CHSH Bell test",
		Long: `Computes four correlation values under a local hidden-variable model
(Monte-Carlo) and under quantum mechanics (closed form), combines them
into the Bell parameter S, and judges each model against the classical
bound S ≤ 2.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			bellCfg := bellbench.DefaultBellConfig()
			bellCfg.Trials = cfg.Trials
			if cmd.Flags().Changed("trials") {
				bellCfg.Trials, _ = cmd.Flags().GetInt("trials")
			}

			logger.Info("starting bell test",
				"trials", bellCfg.Trials,
				"seed", cfg.Seed)

			start := time.Now()
			rng := bellbench.NewRand(cfg.Seed)

			result, err := bellbench.RunBellTest(rng, bellCfg)
			if err != nil {
				return err
			}

			if err := bellbench.WriteBellReport(os.Stdout, result); err != nil {
				return err
			}

			logger.Info("bell test complete",
				"s_classical", result.Classical.S(),
				"s_quantum", result.Quantum.S(),
				"violated", result.Quantum.ViolatesClassicalBound(),
				"duration", time.Since(start))

			return nil
		},
	}

	cmd.Flags().Int("trials", 0, "Monte-Carlo trials per correlation estimate")

	return cmd
}
