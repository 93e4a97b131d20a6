package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedJob(id uint64, size, arrival, completion time.Duration, tier Tier) CompletedJob {
	return CompletedJob{
		Job: Job{
			ID:             id,
			TotalDuration:  size,
			ArrivalSet:     true,
			ArrivalTime:    arrival,
			CompletionSet:  true,
			CompletionTime: completion,
		},
		Tier: tier,
	}
}

func TestFormatCompletedJob_ContainsIDDurationTurnaroundTier(t *testing.T) {
	line := FormatCompletedJob(completedJob(12, 2*time.Second, time.Second, 4*time.Second, TierBackground))

	assert.True(t, strings.HasPrefix(line, "Job 12 "))
	assert.Contains(t, line, "total_duration: 2s")
	assert.Contains(t, line, "turnaround: 3s")
	assert.Contains(t, line, "tier: bg")
	assert.NotContains(t, line, "\n")
}

func TestFileSink_AppendsAndCreates(t *testing.T) {
	// GIVEN a path that does not exist yet
	path := filepath.Join(t.TempDir(), "out.txt")

	// WHEN two runs write to it
	for run := 0; run < 2; run++ {
		sink := NewFileSink(path)
		require.NoError(t, sink.Write(completedJob(uint64(run*2+1), time.Second, 0, time.Second, TierForeground)))
		require.NoError(t, sink.Write(completedJob(uint64(run*2+2), time.Second, 0, 2*time.Second, TierForeground)))
		require.NoError(t, sink.Close())
	}

	// THEN the file holds all four lines in order
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "Job "+string(rune('1'+i))), "line %d: %q", i, line)
	}
}

func TestFileSink_CloseWithoutWrites_CreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, NewFileSink(path).Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileSink_BadPath_ErrorsOnceOnWrite(t *testing.T) {
	// GIVEN a sink whose directory does not exist
	sink := NewFileSink(filepath.Join(t.TempDir(), "nope", "out.txt"))

	// WHEN a record is written and the sink closed
	err := sink.Write(completedJob(1, time.Second, 0, time.Second, TierFCFS))

	// THEN the open error comes from Write only
	assert.ErrorContains(t, err, "opening output file")
	assert.ErrorContains(t, sink.Write(completedJob(2, time.Second, 0, time.Second, TierFCFS)), "opening output file")
	assert.NoError(t, sink.Close())
}

func TestFileSink_BadPath_CloseWithoutWrites_Errors(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "nope", "out.txt"))
	assert.ErrorContains(t, sink.Close(), "opening output file")
}
