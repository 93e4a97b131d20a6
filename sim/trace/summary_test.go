package trace

import (
	"testing"
	"time"
)

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTransitions != 0 || summary.TotalCompletions != 0 {
		t.Error("expected zero counts for nil trace")
	}
	if summary.TransitionCounts == nil || summary.CompletionsByTier == nil {
		t.Error("expected non-nil maps for nil trace")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalTransitions != 0 {
		t.Errorf("expected 0 transitions, got %d", summary.TotalTransitions)
	}
	if summary.MeanTurnaround != 0 || summary.MaxTurnaround != 0 {
		t.Error("expected 0 turnaround values")
	}
	if len(summary.CompletionsByTier) != 0 {
		t.Error("expected empty completion distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace where job 1 walks fg->bg->fcfs and job 2 finishes in fg
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})
	st.RecordTransition(TransitionRecord{JobID: 1, From: "fg", To: "bg"})
	st.RecordTransition(TransitionRecord{JobID: 1, From: "bg", To: "fcfs"})
	st.RecordCompletion(CompletionRecord{JobID: 2, Clock: 3 * time.Second, Tier: "fg", Turnaround: 2 * time.Second})
	st.RecordCompletion(CompletionRecord{JobID: 1, Clock: 12 * time.Second, Tier: "fcfs", Turnaround: 12 * time.Second})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalTransitions != 2 {
		t.Errorf("expected 2 transitions, got %d", summary.TotalTransitions)
	}
	if summary.TransitionCounts[TransitionKey("fg", "bg")] != 1 {
		t.Errorf("expected 1 fg->bg, got %d", summary.TransitionCounts["fg->bg"])
	}
	if summary.TransitionCounts[TransitionKey("bg", "fcfs")] != 1 {
		t.Errorf("expected 1 bg->fcfs, got %d", summary.TransitionCounts["bg->fcfs"])
	}
	if summary.CompletionsByTier["fg"] != 1 || summary.CompletionsByTier["fcfs"] != 1 {
		t.Errorf("unexpected completion distribution %v", summary.CompletionsByTier)
	}
	if summary.MeanTurnaround != 7*time.Second {
		t.Errorf("expected mean 7s, got %v", summary.MeanTurnaround)
	}
	if summary.MaxTurnaround != 12*time.Second {
		t.Errorf("expected max 12s, got %v", summary.MaxTurnaround)
	}
	if summary.LastCompletionTime != 12*time.Second {
		t.Errorf("expected last completion 12s, got %v", summary.LastCompletionTime)
	}
}
