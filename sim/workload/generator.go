package workload

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// ValidArrivalProcesses is the set of recognized arrival process names.
var ValidArrivalProcesses = map[string]bool{"": true, "poisson": true, "gamma": true}

// ValidSizeDistributions is the set of recognized job size distributions.
var ValidSizeDistributions = map[string]bool{"": true, "exponential": true, "constant": true}

// GeneratorConfig describes a synthetic workload. The defaults give a
// utilization of 0.9: 0.9 arrivals per second of 1s mean jobs.
type GeneratorConfig struct {
	NumJobs          int     `yaml:"num_jobs"`
	Rate             float64 `yaml:"rate"`              // arrivals per second
	ArrivalProcess   string  `yaml:"arrival_process"`   // "poisson" (default) or "gamma"
	CV               float64 `yaml:"cv"`                // gamma coefficient of variation
	SizeDistribution string  `yaml:"size_distribution"` // "exponential" (default) or "constant"
	MeanSize         float64 `yaml:"mean_size"`         // seconds
	Seed             int64   `yaml:"seed"`
}

// DefaultGeneratorConfig returns the rho = 0.9 workload.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumJobs:          4000,
		Rate:             0.9,
		ArrivalProcess:   "poisson",
		SizeDistribution: "exponential",
		MeanSize:         1.0,
		Seed:             42,
	}
}

// Validate checks names and ranges.
func (c GeneratorConfig) Validate() error {
	if c.NumJobs < 0 {
		return fmt.Errorf("num_jobs must be non-negative, got %d", c.NumJobs)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %f", c.Rate)
	}
	if c.MeanSize <= 0 {
		return fmt.Errorf("mean_size must be positive, got %f", c.MeanSize)
	}
	if !ValidArrivalProcesses[c.ArrivalProcess] {
		return fmt.Errorf("unknown arrival process %q", c.ArrivalProcess)
	}
	if !ValidSizeDistributions[c.SizeDistribution] {
		return fmt.Errorf("unknown size distribution %q", c.SizeDistribution)
	}
	if c.CV < 0 {
		return fmt.Errorf("cv must be non-negative, got %f", c.CV)
	}
	return nil
}

// Generate samples NumJobs sizes and inter-arrival delays. The same config
// always produces the same workload.
func Generate(cfg GeneratorConfig) (sizes, delays []float64, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	arrivals := NewArrivalSampler(cfg.ArrivalProcess, cfg.Rate, cfg.CV)
	lengths := NewSizeSampler(cfg.SizeDistribution, cfg.MeanSize)

	sizes = make([]float64, cfg.NumJobs)
	delays = make([]float64, cfg.NumJobs)
	for i := 0; i < cfg.NumJobs; i++ {
		delays[i] = arrivals.SampleIAT(rng)
		sizes[i] = lengths.Sample(rng)
	}
	return sizes, delays, nil
}

// StaticSource serves an in-memory workload.
type StaticSource struct {
	Sizes  []float64
	Delays []float64
}

func (s StaticSource) Load() ([]float64, []float64, error) {
	if len(s.Sizes) != len(s.Delays) {
		return nil, nil, fmt.Errorf("got %d sizes and %d delays", len(s.Sizes), len(s.Delays))
	}
	return s.Sizes, s.Delays, nil
}

// FormatSeconds renders values in the comma-separated form CSVSource reads.
func FormatSeconds(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return strings.Join(parts, ",")
}

// WriteSeconds writes values to path, replacing any existing file.
func WriteSeconds(path string, values []float64) error {
	if err := os.WriteFile(path, []byte(FormatSeconds(values)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
