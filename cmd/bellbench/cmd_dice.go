package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/bellbench"
	"github.com/spf13/cobra"
)

func newDiceCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Animate the law of large numbers with die rolls",
		Long: `Rolls a die repeatedly and replays the running relative frequency of
sixes as a terminal chart, converging toward the theoretical 1/6. The
whole series is computed before the first frame; the animation is pure
replay and its timing is cosmetic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			rolls := cfg.Rolls
			if cmd.Flags().Changed("rolls") {
				rolls, _ = cmd.Flags().GetInt("rolls")
			}
			interval, _ := cmd.Flags().GetDuration("interval")
			noAnim, _ := cmd.Flags().GetBool("no-anim")

			logger.Info("rolling dice", "rolls", rolls, "seed", cfg.Seed)

			rng := bellbench.NewRand(cfg.Seed)

			outcomes, err := bellbench.RollDice(rng, rolls)
			if err != nil {
				return err
			}
			freqs := bellbench.ComputeFrequencies(outcomes)

			tracker := bellbench.NewFrequencyTracker()
			for _, o := range outcomes {
				if err := tracker.Record(o); err != nil {
					return err
				}
			}

			if !noAnim && len(freqs) > 0 {
				animateFrequencies(os.Stdout, freqs, interval)
			}

			return bellbench.WriteFrequencyReport(os.Stdout, tracker.Stats())
		},
	}

	cmd.Flags().Int("rolls", 0, "Number of die rolls")
	cmd.Flags().Duration("interval", 30*time.Millisecond, "Frame delay")
	cmd.Flags().Bool("no-anim", false, "Skip the animation, print the summary only")

	return cmd
}
