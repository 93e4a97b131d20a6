package workload

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mlfq-sim/mlfq-sim/sim"
)

// DefaultValue replaces any size or delay that cannot be parsed.
const DefaultValue = 1.0

// Source produces job sizes and inter-arrival delays in seconds, paired by
// index. Both slices have the same length.
type Source interface {
	Load() (sizes, delays []float64, err error)
}

// CSVSource reads two flat files of comma-separated seconds: one with job
// sizes, one with inter-arrival delays.
type CSVSource struct {
	JobsPath  string
	TimesPath string
	Limit     int // keep at most this many pairs (0 = all)
}

// Load reads both files. A missing or unreadable file is an error; a
// malformed entry becomes DefaultValue. The result is truncated to Limit and
// to the shorter of the two sequences.
func (c CSVSource) Load() ([]float64, []float64, error) {
	sizes, err := readSeconds(c.JobsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading job sizes: %w", err)
	}
	delays, err := readSeconds(c.TimesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading inter-arrival times: %w", err)
	}
	if len(sizes) != len(delays) {
		logrus.Warnf("workload: %d job sizes but %d inter-arrival times; using the first %d pairs",
			len(sizes), len(delays), min(len(sizes), len(delays)))
	}
	n := min(len(sizes), len(delays))
	if c.Limit > 0 {
		n = min(n, c.Limit)
	}
	return sizes[:n], delays[:n], nil
}

func readSeconds(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeconds(string(data)), nil
}

// ParseSeconds splits comma-separated values, substituting DefaultValue for
// anything that is not a finite number. Surrounding whitespace is ignored and
// a single trailing separator does not produce an entry.
func ParseSeconds(data string) []float64 {
	data = strings.TrimSpace(data)
	if data == "" {
		return []float64{}
	}
	fields := strings.Split(data, ",")
	if len(fields) > 1 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			logrus.Debugf("workload: entry %d %q is malformed, using %.1f", i, f, DefaultValue)
			v = DefaultValue
		}
		out = append(out, v)
	}
	return out
}

// BuildArrivals turns paired sizes and delays into arrivals whose jobs are
// numbered by factory in sequence order.
func BuildArrivals(factory *sim.JobFactory, sizes, delays []float64) ([]sim.Arrival, error) {
	if len(sizes) != len(delays) {
		return nil, fmt.Errorf("got %d sizes and %d delays", len(sizes), len(delays))
	}
	arrivals := make([]sim.Arrival, len(sizes))
	for i := range sizes {
		arrivals[i] = sim.Arrival{
			Job:   factory.NewJob(sim.SecondsToDuration(sizes[i])),
			Delay: sim.SecondsToDuration(delays[i]),
		}
	}
	return arrivals, nil
}

// Load reads src and builds its arrivals with a fresh job factory.
func Load(src Source) ([]sim.Arrival, error) {
	sizes, delays, err := src.Load()
	if err != nil {
		return nil, err
	}
	return BuildArrivals(&sim.JobFactory{}, sizes, delays)
}
