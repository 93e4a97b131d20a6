package sim

import (
	"runtime"
	"time"
)

// Pacer suspends the calling goroutine for a span of simulated time.
// Producer and consumer use it between operations; it is never called with
// the schedule lock held.
type Pacer interface {
	Pause(d time.Duration)
}

// RealTimePacer sleeps for d divided by Speedup of wall-clock time.
// A Speedup of 1 replays the workload in real time.
type RealTimePacer struct {
	Speedup float64
}

// Pause sleeps for the scaled duration.
func (p RealTimePacer) Pause(d time.Duration) {
	if p.Speedup <= 0 || d <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) / p.Speedup))
}

// YieldPacer only yields the processor. Runs paced this way are limited by
// CPU, not by the workload's inter-arrival delays.
type YieldPacer struct{}

// Pause yields without sleeping.
func (YieldPacer) Pause(time.Duration) {
	runtime.Gosched()
}

// NewPacer returns the pacer implied by a speedup factor: real-time pacing
// for positive values, yielding only for zero.
func NewPacer(speedup float64) Pacer {
	if speedup <= 0 {
		return YieldPacer{}
	}
	return RealTimePacer{Speedup: speedup}
}
