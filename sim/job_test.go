package sim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFactory_NewJob_AssignsIncreasingIDs(t *testing.T) {
	// GIVEN a fresh factory
	f := &JobFactory{}

	// WHEN three jobs are created
	a := f.NewJob(time.Second)
	b := f.NewJob(2 * time.Second)
	c := f.NewJob(3 * time.Second)

	// THEN IDs start at 1 and increase by one
	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, uint64(3), c.ID)
}

func TestJobFactory_NewJob_ConcurrentIDsAreUnique(t *testing.T) {
	f := &JobFactory{}
	const n = 100
	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- f.NewJob(time.Second).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestJobFactory_NewJob_DurationsSetTimestampsUnset(t *testing.T) {
	j := (&JobFactory{}).NewJob(1500 * time.Millisecond)

	assert.Equal(t, 1500*time.Millisecond, j.TotalDuration)
	assert.Equal(t, j.TotalDuration, j.RemainingDuration)
	assert.Zero(t, j.ServiceReceived)
	assert.False(t, j.ArrivalSet)
	assert.False(t, j.CompletionSet)
}

func TestJobFactory_NewJob_NegativeSizeClampedToZero(t *testing.T) {
	j := (&JobFactory{}).NewJob(-time.Second)
	assert.Zero(t, j.TotalDuration)
	assert.Zero(t, j.RemainingDuration)
}

func TestSecondsToDuration_RoundsToNanosecond(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Duration
	}{
		{0.1, 100 * time.Millisecond},
		{1.0, time.Second},
		{7.5, 7500 * time.Millisecond},
		{0.3, 300 * time.Millisecond},
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SecondsToDuration(tc.seconds), "seconds=%v", tc.seconds)
	}
}

func TestJob_MarkArrived_Twice_Panics(t *testing.T) {
	j := (&JobFactory{}).NewJob(time.Second)
	j.MarkArrived(0)
	assert.True(t, j.ArrivalSet)
	assert.Panics(t, func() { j.MarkArrived(time.Second) })
}

func TestJob_MarkCompleted_WithRemainingService_Panics(t *testing.T) {
	// GIVEN a job with service still owed
	j := (&JobFactory{}).NewJob(time.Second)
	j.MarkArrived(0)

	// WHEN MarkCompleted is called THEN it panics and leaves the job unfinished
	assert.Panics(t, func() { j.MarkCompleted(time.Second) })
	assert.False(t, j.CompletionSet)
}

func TestJob_Serve_ClampsAtZero(t *testing.T) {
	// GIVEN a job with 150ms remaining
	j := (&JobFactory{}).NewJob(150 * time.Millisecond)

	// WHEN it is served 100ms twice
	used1 := j.serve(100 * time.Millisecond)
	used2 := j.serve(100 * time.Millisecond)

	// THEN the second slice is cut to what was left
	assert.Equal(t, 100*time.Millisecond, used1)
	assert.Equal(t, 50*time.Millisecond, used2)
	assert.Zero(t, j.RemainingDuration)
	assert.Equal(t, j.TotalDuration, j.ServiceReceived)
}

func TestJob_Turnaround(t *testing.T) {
	j := (&JobFactory{}).NewJob(time.Second)
	assert.Zero(t, j.Turnaround(), "unfinished job has no turnaround")

	j.MarkArrived(2 * time.Second)
	j.serve(time.Second)
	j.MarkCompleted(5 * time.Second)

	require.True(t, j.CompletionSet)
	assert.Equal(t, 3*time.Second, j.Turnaround())
	assert.Panics(t, func() { j.MarkCompleted(6 * time.Second) }, "second completion must panic")
}

func TestJob_String_IncludesID(t *testing.T) {
	j := Job{ID: 42, TotalDuration: time.Second}
	assert.Contains(t, j.String(), "42")
}
