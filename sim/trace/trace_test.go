package trace

import (
	"testing"
	"time"
)

func TestSimulationTrace_RecordTransition_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for transitions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN a transition record is recorded
	st.RecordTransition(TransitionRecord{
		JobID:   7,
		Clock:   4100 * time.Millisecond,
		From:    "fg",
		To:      "bg",
		Service: 4100 * time.Millisecond,
	})

	// THEN the trace contains one transition record with correct data
	if len(st.Transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(st.Transitions))
	}
	if st.Transitions[0].JobID != 7 {
		t.Errorf("expected job 7, got %d", st.Transitions[0].JobID)
	}
	if st.Transitions[0].To != "bg" {
		t.Errorf("expected to=bg, got %s", st.Transitions[0].To)
	}
}

func TestSimulationTrace_RecordCompletion_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for transitions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN a completion record is recorded
	st.RecordCompletion(CompletionRecord{JobID: 3, Clock: 2 * time.Second, Tier: "fg", Turnaround: 2 * time.Second})

	// THEN the trace contains one completion record with correct data
	if len(st.Completions) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(st.Completions))
	}
	if st.Completions[0].Tier != "fg" {
		t.Errorf("expected tier fg, got %s", st.Completions[0].Tier)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN multiple records are added
	st.RecordTransition(TransitionRecord{JobID: 1, From: "fg", To: "bg"})
	st.RecordTransition(TransitionRecord{JobID: 2, From: "fg", To: "bg"})
	st.RecordCompletion(CompletionRecord{JobID: 1, Tier: "bg"})

	// THEN order is preserved
	if len(st.Transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(st.Transitions))
	}
	if st.Transitions[0].JobID != 1 || st.Transitions[1].JobID != 2 {
		t.Error("transition order not preserved")
	}
	if len(st.Completions) != 1 || st.Completions[0].JobID != 1 {
		t.Error("completion record mismatch")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"transitions", true},
		{"", true},
		{"decisions", false},
		{"all", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none level must be disabled")
	}
	if (TraceConfig{}).Enabled() {
		t.Error("empty level must be disabled")
	}
	if !(TraceConfig{Level: TraceLevelTransitions}).Enabled() {
		t.Error("transitions level must be enabled")
	}
}
