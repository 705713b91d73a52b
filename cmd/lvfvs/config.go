package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfvs/fvs"
)

// ErrInvalidConfig is wrapped by every ExperimentConfig validation failure.
var ErrInvalidConfig = errors.New("invalid experiment config")

// configValidate checks ExperimentConfig struct tags.
var configValidate = validator.New()

// ExperimentConfig describes an iteration-complexity experiment.
type ExperimentConfig struct {
	Graphs        int      `yaml:"graphs" validate:"gte=1"`
	Samples       int      `yaml:"samples" validate:"gte=1"`
	N             int      `yaml:"n" validate:"gte=1"`
	P             float64  `yaml:"p" validate:"gte=0,lte=1"`
	MaxWeight     int      `yaml:"max_weight" validate:"gte=1"`
	Seed          int64    `yaml:"seed" validate:"gte=1"`
	MaxTrials     int      `yaml:"max_trials" validate:"gte=1"`
	Workers       int      `yaml:"workers" validate:"gte=1"`
	Distributions []string `yaml:"distributions" validate:"min=1,dive,oneof=degree degree-weight"`
}

// DefaultExperimentConfig: 10 graphs on 10 vertices, p=0.5, weights in [1,100],
// 100 samples per distribution.
func DefaultExperimentConfig() ExperimentConfig {
	return ExperimentConfig{
		Graphs:        10,
		Samples:       100,
		N:             10,
		P:             0.5,
		MaxWeight:     100,
		Seed:          1,
		MaxTrials:     1_000_000,
		Workers:       1,
		Distributions: []string{fvs.DegreeName, fvs.DegreeOverWeightName},
	}
}

// LoadExperimentConfig overlays the YAML file at path (if any) on the defaults
// and validates the result.
func LoadExperimentConfig(path string) (ExperimentConfig, error) {
	cfg := DefaultExperimentConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks field ranges; distribution names must be known to fvs.
func (c ExperimentConfig) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
