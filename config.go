package bellbench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExperimentConfig bundles the numeric parameters of both demonstrations.
// The zero value is not usable; start from DefaultExperimentConfig.
type ExperimentConfig struct {
	// Seed for the run's generator. Zero means time-derived.
	Seed uint64 `yaml:"seed"`

	// Monte-Carlo trials per classical correlation estimate
	Trials int `yaml:"trials"`

	// Die rolls for the law-of-large-numbers demonstration
	Rolls int `yaml:"rolls"`

	Sweep SweepConfig `yaml:"sweep"`
}

// DefaultExperimentConfig mirrors the reference demonstrations: 10k trials,
// 1000 rolls, 100-point sweeps.
func DefaultExperimentConfig() ExperimentConfig {
	return ExperimentConfig{
		Seed:   0,
		Trials: 10000,
		Rolls:  1000,
		Sweep:  DefaultSweepConfig(),
	}
}

// LoadExperimentConfig reads a YAML experiment file over the defaults, so a
// file only has to name the parameters it changes.
func LoadExperimentConfig(path string) (ExperimentConfig, error) {
	cfg := DefaultExperimentConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return ExperimentConfig{}, fmt.Errorf("load experiment config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ExperimentConfig{}, fmt.Errorf("parse experiment config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return ExperimentConfig{}, fmt.Errorf("experiment config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects parameter values the estimators would refuse anyway, so
// a bad file fails before any sampling starts.
func (c ExperimentConfig) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials: %w (got %d)", ErrInvalidTrials, c.Trials)
	}
	if c.Rolls < 0 {
		return fmt.Errorf("rolls: %w (got %d)", ErrInvalidRolls, c.Rolls)
	}
	if c.Sweep.Points <= 0 {
		return fmt.Errorf("sweep points: %w (got %d)", ErrInvalidPoints, c.Sweep.Points)
	}
	if c.Sweep.TrialsPerPoint <= 0 {
		return fmt.Errorf("sweep trials: %w (got %d)", ErrInvalidTrials, c.Sweep.TrialsPerPoint)
	}
	return nil
}
