package sim

import (
	"fmt"
	"time"
)

// Default tuning constants.
const (
	DefaultThresholdFG   = 4 * time.Second
	DefaultThresholdFCFS = 7500 * time.Millisecond
	DefaultQuantum       = 100 * time.Millisecond
	DefaultMaxJobs       = 4000
	DefaultProgressEvery = 100
	DefaultSpeedup       = 1.0
)

// Config groups the tuning constants of one simulation run.
type Config struct {
	ThresholdFG   time.Duration // lifetime service above which a foreground job moves to background
	ThresholdFCFS time.Duration // lifetime service above which a background job moves to FCFS
	Quantum       time.Duration // simulated time advanced per tick
	MaxJobs       int           // bounded prefix of the workload to simulate (0 = all)
	ProgressEvery int           // completions between progress reports (0 = never)
	Speedup       float64       // simulated seconds per wall-clock second for pacing (0 = no pacing)
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() Config {
	return Config{
		ThresholdFG:   DefaultThresholdFG,
		ThresholdFCFS: DefaultThresholdFCFS,
		Quantum:       DefaultQuantum,
		MaxJobs:       DefaultMaxJobs,
		ProgressEvery: DefaultProgressEvery,
		Speedup:       DefaultSpeedup,
	}
}

// Validate checks that all values are in range.
func (c Config) Validate() error {
	if c.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %v", c.Quantum)
	}
	if c.ThresholdFG < 0 {
		return fmt.Errorf("foreground threshold must be non-negative, got %v", c.ThresholdFG)
	}
	if c.ThresholdFCFS < 0 {
		return fmt.Errorf("fcfs threshold must be non-negative, got %v", c.ThresholdFCFS)
	}
	if c.MaxJobs < 0 {
		return fmt.Errorf("max jobs must be non-negative, got %d", c.MaxJobs)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress interval must be non-negative, got %d", c.ProgressEvery)
	}
	if c.Speedup < 0 {
		return fmt.Errorf("speedup must be non-negative, got %f", c.Speedup)
	}
	return nil
}
