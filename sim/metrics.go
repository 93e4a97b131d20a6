// Tracks simulation-wide turnaround statistics.

package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Metrics aggregates statistics about a finished run for final reporting.
type Metrics struct {
	RunID             string
	CompletedJobs     int
	Ticks             int
	SimulatedTime     time.Duration   // schedule clock when the last job completed
	WallTime          time.Duration   // real time spent in Run
	TotalTurnaround   time.Duration   // sum of (completion - arrival)
	Turnarounds       []time.Duration // in completion order
	CompletionsByTier map[Tier]int
}

// NewMetrics computes metrics from the completed list.
func NewMetrics(runID string, completed []CompletedJob) *Metrics {
	m := &Metrics{
		RunID:             runID,
		CompletedJobs:     len(completed),
		Turnarounds:       make([]time.Duration, 0, len(completed)),
		CompletionsByTier: make(map[Tier]int),
	}
	for _, c := range completed {
		ta := c.Job.Turnaround()
		m.Turnarounds = append(m.Turnarounds, ta)
		m.TotalTurnaround += ta
		m.CompletionsByTier[c.Tier]++
		m.SimulatedTime = max(m.SimulatedTime, c.Job.CompletionTime)
	}
	return m
}

// MeanTurnaround returns the average turnaround, or zero with no completions.
func (m *Metrics) MeanTurnaround() time.Duration {
	if m.CompletedJobs == 0 {
		return 0
	}
	return m.TotalTurnaround / time.Duration(m.CompletedJobs)
}

// MeanTurnaroundSeconds returns the average turnaround in fractional seconds,
// the unit the workload files use.
func (m *Metrics) MeanTurnaroundSeconds() float64 {
	return CalculateMean(m.Turnarounds) / float64(time.Second)
}

// TurnaroundPercentile returns the p-th percentile turnaround.
func (m *Metrics) TurnaroundPercentile(p float64) time.Duration {
	return time.Duration(CalculatePercentile(sortedCopy(m.Turnarounds), p))
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Run                  : %s\n", m.RunID)
	fmt.Fprintf(w, "Completed Jobs       : %s\n", humanize.Comma(int64(m.CompletedJobs)))
	fmt.Fprintf(w, "Ticks                : %s\n", humanize.Comma(int64(m.Ticks)))
	fmt.Fprintf(w, "Simulated Time       : %v\n", m.SimulatedTime)
	fmt.Fprintf(w, "Wall Time            : %v\n", m.WallTime.Round(time.Millisecond))
	if m.CompletedJobs > 0 {
		fmt.Fprintf(w, "Average Turnaround   : %v (%.4fs)\n", m.MeanTurnaround(), m.MeanTurnaroundSeconds())
		fmt.Fprintf(w, "p50 Turnaround       : %v\n", m.TurnaroundPercentile(50))
		fmt.Fprintf(w, "p90 Turnaround       : %v\n", m.TurnaroundPercentile(90))
		fmt.Fprintf(w, "p99 Turnaround       : %v\n", m.TurnaroundPercentile(99))
		for _, tier := range Tiers {
			fmt.Fprintf(w, "Completed in %-8s: %s\n", tier, humanize.Comma(int64(m.CompletionsByTier[tier])))
		}
	}
}
