// Defines the Job struct that models one unit of CPU work in the simulation.
// Tracks total and remaining service time, lifetime service received, and
// the arrival/completion timestamps used for turnaround.

package sim

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Job models a single job's lifecycle in the schedule.
// All durations and timestamps are simulated time; timestamps are offsets
// from the start of the schedule's clock.
type Job struct {
	ID uint64 // Unique, monotonically increasing identifier

	TotalDuration     time.Duration // Service demand, fixed at creation
	RemainingDuration time.Duration // Service still owed; only the schedule decrements it
	ServiceReceived   time.Duration // Lifetime service, never reset across tiers

	ArrivalSet     bool          // Tracks whether ArrivalTime has been set
	ArrivalTime    time.Duration // Clock when the job was admitted to the foreground tier
	CompletionSet  bool          // Tracks whether CompletionTime has been set
	CompletionTime time.Duration // Clock when RemainingDuration reached zero
}

// JobFactory hands out jobs with increasing IDs starting at 1.
// Safe for concurrent use.
type JobFactory struct {
	next atomic.Uint64
}

// NewJob creates a job of the given size with the next ID.
// Timestamps are left unset; arrival is stamped at admission, not here.
func (f *JobFactory) NewJob(size time.Duration) *Job {
	if size < 0 {
		size = 0
	}
	return &Job{
		ID:                f.next.Add(1),
		TotalDuration:     size,
		RemainingDuration: size,
	}
}

// SecondsToDuration converts floating-point seconds to a Duration, rounding
// to the nearest nanosecond so that e.g. 0.1s is exactly 100ms.
func SecondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// MarkArrived records the admission timestamp. It must be called exactly once.
func (j *Job) MarkArrived(now time.Duration) {
	if j.ArrivalSet {
		panic(fmt.Sprintf("MarkArrived: job %d already arrived at %v", j.ID, j.ArrivalTime))
	}
	j.ArrivalSet = true
	j.ArrivalTime = now
}

// MarkCompleted records the completion timestamp.
// Panics unless the job has no remaining service and has not completed before.
func (j *Job) MarkCompleted(now time.Duration) {
	if j.RemainingDuration != 0 {
		panic(fmt.Sprintf("MarkCompleted: job %d still has %v remaining", j.ID, j.RemainingDuration))
	}
	if j.CompletionSet {
		panic(fmt.Sprintf("MarkCompleted: job %d already completed at %v", j.ID, j.CompletionTime))
	}
	j.CompletionSet = true
	j.CompletionTime = now
}

// serve gives the job up to d of service and returns the amount consumed.
// Remaining service never drops below zero.
func (j *Job) serve(d time.Duration) time.Duration {
	used := min(d, j.RemainingDuration)
	j.RemainingDuration -= used
	j.ServiceReceived += used
	return used
}

// Turnaround returns completion minus arrival, or zero for an unfinished job.
func (j *Job) Turnaround() time.Duration {
	if !j.ArrivalSet || !j.CompletionSet {
		return 0
	}
	return j.CompletionTime - j.ArrivalTime
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, Total: %v, Remaining: %v, Service: %v)", j.ID, j.TotalDuration, j.RemainingDuration, j.ServiceReceived)
}
