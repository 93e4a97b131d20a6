package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sim "github.com/mlfq-sim/mlfq-sim/sim"
	"github.com/mlfq-sim/mlfq-sim/sim/workload"
)

// FileConfig is the optional YAML run configuration passed with --config.
// Nil pointer fields mean "not set in YAML" and do not override defaults.
// String fields use empty string for "not set".
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type FileConfig struct {
	Jobs          string         `yaml:"jobs"`
	Times         string         `yaml:"times"`
	Output        string         `yaml:"output"`
	ThresholdFG   *time.Duration `yaml:"threshold_fg"`
	ThresholdFCFS *time.Duration `yaml:"threshold_fcfs"`
	Quantum       *time.Duration `yaml:"quantum"`
	MaxJobs       *int           `yaml:"max_jobs"`
	ProgressEvery *int           `yaml:"progress_every"`
	Speedup       *float64       `yaml:"speedup"`
	TraceLevel    string         `yaml:"trace_level"`

	// Generator starts from workload.DefaultGeneratorConfig, so a partial
	// section only overrides the keys it names.
	Generator *workload.GeneratorConfig `yaml:"generator"`
}

// LoadFileConfig reads and strictly parses a YAML run configuration.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	gen := workload.DefaultGeneratorConfig()
	fc := FileConfig{Generator: &gen}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &fc, nil
}

// ApplyTo copies every value set in the file onto cfg.
func (fc *FileConfig) ApplyTo(cfg *sim.Config) {
	if fc.ThresholdFG != nil {
		cfg.ThresholdFG = *fc.ThresholdFG
	}
	if fc.ThresholdFCFS != nil {
		cfg.ThresholdFCFS = *fc.ThresholdFCFS
	}
	if fc.Quantum != nil {
		cfg.Quantum = *fc.Quantum
	}
	if fc.MaxJobs != nil {
		cfg.MaxJobs = *fc.MaxJobs
	}
	if fc.ProgressEvery != nil {
		cfg.ProgressEvery = *fc.ProgressEvery
	}
	if fc.Speedup != nil {
		cfg.Speedup = *fc.Speedup
	}
}
