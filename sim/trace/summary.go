package trace

import "time"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransitions   int
	TotalCompletions   int
	TransitionCounts   map[string]int // "fg->bg" → count
	CompletionsByTier  map[string]int // tier → count of jobs that finished there
	MeanTurnaround     time.Duration
	MaxTurnaround      time.Duration
	LastCompletionTime time.Duration
}

// TransitionKey formats the key used in TransitionCounts.
func TransitionKey(from, to string) string {
	return from + "->" + to
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TransitionCounts:  make(map[string]int),
		CompletionsByTier: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransitions = len(st.Transitions)
	for _, t := range st.Transitions {
		summary.TransitionCounts[TransitionKey(t.From, t.To)]++
	}

	summary.TotalCompletions = len(st.Completions)
	if len(st.Completions) > 0 {
		var total time.Duration
		for _, c := range st.Completions {
			summary.CompletionsByTier[c.Tier]++
			total += c.Turnaround
			if c.Turnaround > summary.MaxTurnaround {
				summary.MaxTurnaround = c.Turnaround
			}
			if c.Clock > summary.LastCompletionTime {
				summary.LastCompletionTime = c.Clock
			}
		}
		summary.MeanTurnaround = total / time.Duration(len(st.Completions))
	}

	return summary
}
