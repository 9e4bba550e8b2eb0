package bellbench

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultExperimentConfig verifies the reference parameters.
func TestDefaultExperimentConfig(t *testing.T) {
	cfg := DefaultExperimentConfig()

	if cfg.Trials != 10000 {
		t.Errorf("trials = %d, want 10000", cfg.Trials)
	}
	if cfg.Rolls != 1000 {
		t.Errorf("rolls = %d, want 1000", cfg.Rolls)
	}
	if cfg.Sweep != DefaultSweepConfig() {
		t.Errorf("sweep = %+v, want defaults", cfg.Sweep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

// TestLoadExperimentConfig_Overlay verifies a file only overrides what it
// names, leaving the rest at defaults.
func TestLoadExperimentConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")

	data := "seed: 42\ntrials: 50000\nsweep:\n  points: 25\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadExperimentConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Trials != 50000 {
		t.Errorf("trials = %d, want 50000", cfg.Trials)
	}
	if cfg.Rolls != 1000 {
		t.Errorf("rolls = %d, want default 1000", cfg.Rolls)
	}
	if cfg.Sweep.Points != 25 {
		t.Errorf("sweep points = %d, want 25", cfg.Sweep.Points)
	}
	if cfg.Sweep.TrialsPerPoint != 1000 {
		t.Errorf("sweep trials = %d, want default 1000", cfg.Sweep.TrialsPerPoint)
	}
}

// TestLoadExperimentConfig_Missing verifies a missing file errors.
func TestLoadExperimentConfig_Missing(t *testing.T) {
	_, err := LoadExperimentConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadExperimentConfig_Invalid verifies a file with bad parameters is
// rejected at load time, before any sampling.
func TestLoadExperimentConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")

	if err := os.WriteFile(path, []byte("trials: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadExperimentConfig(path)
	if !errors.Is(err, ErrInvalidTrials) {
		t.Errorf("expected ErrInvalidTrials, got %v", err)
	}
}

// TestExperimentConfig_Validate covers each rejected field.
func TestExperimentConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ExperimentConfig)
		want   error
	}{
		{"zero trials", func(c *ExperimentConfig) { c.Trials = 0 }, ErrInvalidTrials},
		{"negative rolls", func(c *ExperimentConfig) { c.Rolls = -1 }, ErrInvalidRolls},
		{"zero sweep points", func(c *ExperimentConfig) { c.Sweep.Points = 0 }, ErrInvalidPoints},
		{"zero sweep trials", func(c *ExperimentConfig) { c.Sweep.TrialsPerPoint = 0 }, ErrInvalidTrials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExperimentConfig()
			tc.mutate(&cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	// Zero rolls is a valid empty experiment, not an error.
	cfg := DefaultExperimentConfig()
	cfg.Rolls = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("rolls=0 rejected: %v", err)
	}
}
