package sim

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// ProgressReport is a periodic diagnostic snapshot. It has no effect on
// scheduling.
type ProgressReport struct {
	RunID          string
	Clock          time.Duration
	Counts         TierCounts
	MeanTurnaround time.Duration
}

// ProgressObserver receives progress reports from the tick consumer.
// It is called outside the schedule lock.
type ProgressObserver interface {
	OnProgress(r ProgressReport)
}

// ProgressFunc adapts a plain function to ProgressObserver.
type ProgressFunc func(r ProgressReport)

// OnProgress calls f(r).
func (f ProgressFunc) OnProgress(r ProgressReport) { f(r) }

// LogProgressObserver writes each report through logrus.
type LogProgressObserver struct {
	Log *logrus.Entry
}

func (o LogProgressObserver) OnProgress(r ProgressReport) {
	o.Log.WithFields(logrus.Fields{
		"fg":      r.Counts.Foreground,
		"bg":      r.Counts.Background,
		"fcfs":    r.Counts.FCFSQueued,
		"running": r.Counts.FCFSRunning,
	}).Infof("[clock %v] %s jobs completed, mean turnaround %v",
		r.Clock, humanize.Comma(int64(r.Counts.Completed)), r.MeanTurnaround.Round(time.Millisecond))
}
