package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/bellbench"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	logger := slog.Default().With("run_id", uuid.NewString())

	rootCmd := &cobra.Command{
		Use:   "bellbench",
		Short: "Numeric demonstrations of statistical laws",
		Long: `bellbench runs two self-contained demonstrations:

  bell    Monte-Carlo CHSH Bell test: hidden variables vs quantum mechanics
  dice    Law of large numbers: running frequency of rolling a six
  sweep   Correlation and Bell-parameter curves as CSV for external plotting

Each command computes its statistic, reports it, and exits.`,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML experiment file")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 = time-derived)")

	rootCmd.AddCommand(
		newBellCmd(logger),
		newDiceCmd(logger),
		newSweepCmd(logger),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bellbench version %s\n", version)
		},
	}
}

// resolveConfig layers the experiment parameters: defaults, then the YAML
// file if given, then explicit flags.
func resolveConfig(cmd *cobra.Command) (bellbench.ExperimentConfig, error) {
	cfg := bellbench.DefaultExperimentConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = bellbench.LoadExperimentConfig(path)
		if err != nil {
			return bellbench.ExperimentConfig{}, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}

	return cfg, nil
}
