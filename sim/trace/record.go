// Package trace provides transition-trace recording for schedule analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "time"

// TransitionRecord captures a single demotion from one tier to the next.
type TransitionRecord struct {
	JobID   uint64
	Clock   time.Duration // simulated clock at the end of the tick
	From    string
	To      string
	Service time.Duration // lifetime service at the moment of demotion
}

// CompletionRecord captures a job leaving the schedule.
type CompletionRecord struct {
	JobID      uint64
	Clock      time.Duration
	Tier       string // tier the job finished in
	Turnaround time.Duration
}
