// sim/schedule.go
package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/mlfq-sim/mlfq-sim/sim/trace"
)

// CompletedJob is a snapshot of a job taken when it left the schedule,
// tagged with the tier it finished in.
type CompletedJob struct {
	Job  Job
	Tier Tier
}

// TickResult describes what a single Advance call did.
type TickResult struct {
	Clock         time.Duration // simulated clock after the tick
	Served        Tier          // tier that received service, TierNone if none did
	Started       bool          // an FCFS job was popped into the running slot
	Completed     int           // jobs completed during this tick
	Demoted       int           // jobs moved to a lower tier during this tick
	Counts        TierCounts    // populations after the tick
	TurnaroundSum time.Duration // sum of turnaround over all completed jobs so far
}

// MeanTurnaround returns the running mean turnaround over all completed jobs.
func (r TickResult) MeanTurnaround() time.Duration {
	if r.Counts.Completed == 0 {
		return 0
	}
	return r.TurnaroundSum / time.Duration(r.Counts.Completed)
}

// ScheduleSnapshot is a consistent copy of the whole schedule.
type ScheduleSnapshot struct {
	Clock      time.Duration
	Foreground []Job
	Background []Job
	FCFS       []Job
	Running    *Job
	Completed  []CompletedJob
}

// TieredSchedule is the shared state of the scheduler: three tiers, the FCFS
// running slot and the completed list. Every exported method takes the lock
// exactly once, so callers never observe a partially applied tick.
type TieredSchedule struct {
	mu sync.Mutex

	target        int
	thresholdFG   time.Duration
	thresholdFCFS time.Duration

	clock      time.Duration
	admitted   int
	foreground TierQueue
	background TierQueue
	fcfs       TierQueue
	running    *Job

	completed     []CompletedJob
	turnaroundSum time.Duration

	trace *trace.SimulationTrace // nil when tracing is off
}

// NewTieredSchedule creates a schedule that is complete once target jobs
// have finished. st may be nil.
func NewTieredSchedule(target int, cfg Config, st *trace.SimulationTrace) *TieredSchedule {
	if target < 0 {
		panic(fmt.Sprintf("NewTieredSchedule: target must be non-negative, got %d", target))
	}
	return &TieredSchedule{
		target:        target,
		thresholdFG:   cfg.ThresholdFG,
		thresholdFCFS: cfg.ThresholdFCFS,
		completed:     make([]CompletedJob, 0, target),
		trace:         st,
	}
}

// Target returns the number of jobs the schedule waits for.
func (s *TieredSchedule) Target() int {
	return s.target
}

// Admit stamps the job's arrival at the current clock and appends it to the
// foreground tier.
func (s *TieredSchedule) Admit(j *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admitted == s.target {
		panic(fmt.Sprintf("Admit: job %d exceeds target of %d jobs", j.ID, s.target))
	}
	j.MarkArrived(s.clock)
	s.foreground.Enqueue(j)
	s.admitted++
}

// Advance runs one tick of length quantum. Exactly one location is serviced,
// checked in priority order: the running FCFS job, the foreground tier, the
// background tier, then the FCFS queue (which only starts its head job).
func (s *TieredSchedule) Advance(quantum time.Duration) TickResult {
	if quantum <= 0 {
		panic(fmt.Sprintf("Advance: quantum must be positive, got %v", quantum))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock += quantum
	res := TickResult{Served: TierNone}

	switch {
	case s.running != nil:
		res.Served = TierFCFS
		j := s.running
		j.serve(quantum)
		if j.RemainingDuration == 0 {
			s.running = nil
			s.complete(j, TierFCFS)
			res.Completed++
		}
	case s.foreground.Len() > 0:
		res.Served = TierForeground
		res.Completed, res.Demoted = s.serveTier(&s.foreground, TierForeground, &s.background, TierBackground, s.thresholdFG, quantum)
	case s.background.Len() > 0:
		res.Served = TierBackground
		res.Completed, res.Demoted = s.serveTier(&s.background, TierBackground, &s.fcfs, TierFCFS, s.thresholdFCFS, quantum)
	case s.fcfs.Len() > 0:
		// Starting a job does not consume service; it runs from the next tick.
		s.running = s.fcfs.Dequeue()
		res.Started = true
	}

	res.Clock = s.clock
	res.Counts = s.countsLocked()
	res.TurnaroundSum = s.turnaroundSum
	return res
}

// serveTier drains tier, gives every member an equal share of quantum and
// re-enqueues the survivors in scan order. Members whose lifetime service
// exceeds threshold move to the tail of next instead.
func (s *TieredSchedule) serveTier(tier *TierQueue, from Tier, next *TierQueue, to Tier, threshold, quantum time.Duration) (completed, demoted int) {
	jobs := tier.Drain()
	share := quantum / time.Duration(len(jobs))
	if share == 0 {
		share = 1
	}
	for _, j := range jobs {
		j.serve(share)
		switch {
		case j.RemainingDuration == 0:
			s.complete(j, from)
			completed++
		case j.ServiceReceived > threshold:
			next.Enqueue(j)
			demoted++
			if s.trace != nil {
				s.trace.RecordTransition(trace.TransitionRecord{
					JobID:   j.ID,
					Clock:   s.clock,
					From:    string(from),
					To:      string(to),
					Service: j.ServiceReceived,
				})
			}
		default:
			tier.Enqueue(j)
		}
	}
	return completed, demoted
}

func (s *TieredSchedule) complete(j *Job, from Tier) {
	if len(s.completed) == s.target {
		panic(fmt.Sprintf("complete: job %d exceeds target of %d jobs", j.ID, s.target))
	}
	j.MarkCompleted(s.clock)
	s.completed = append(s.completed, CompletedJob{Job: *j, Tier: from})
	s.turnaroundSum += j.Turnaround()
	if s.trace != nil {
		s.trace.RecordCompletion(trace.CompletionRecord{
			JobID:      j.ID,
			Clock:      s.clock,
			Tier:       string(from),
			Turnaround: j.Turnaround(),
		})
	}
}

// IsComplete reports whether every target job has finished.
func (s *TieredSchedule) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed) == s.target
}

// Clock returns the simulated time elapsed so far.
func (s *TieredSchedule) Clock() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// Counts returns the current population of every location.
func (s *TieredSchedule) Counts() TierCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countsLocked()
}

func (s *TieredSchedule) countsLocked() TierCounts {
	c := TierCounts{
		Foreground: s.foreground.Len(),
		Background: s.background.Len(),
		FCFSQueued: s.fcfs.Len(),
		Completed:  len(s.completed),
	}
	if s.running != nil {
		c.FCFSRunning = 1
	}
	return c
}

// Completed returns a copy of the completed list in completion order.
func (s *TieredSchedule) Completed() []CompletedJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CompletedJob(nil), s.completed...)
}

// Snapshot returns a consistent copy of every tier.
func (s *TieredSchedule) Snapshot() ScheduleSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := ScheduleSnapshot{
		Clock:      s.clock,
		Foreground: copyJobs(s.foreground.Items()),
		Background: copyJobs(s.background.Items()),
		FCFS:       copyJobs(s.fcfs.Items()),
		Completed:  append([]CompletedJob(nil), s.completed...),
	}
	if s.running != nil {
		r := *s.running
		snap.Running = &r
	}
	return snap
}

func copyJobs(jobs []*Job) []Job {
	out := make([]Job, len(jobs))
	for i, j := range jobs {
		out[i] = *j
	}
	return out
}
