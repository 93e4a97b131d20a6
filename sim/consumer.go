package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TickConsumer advances the schedule by fixed quanta until every job has
// completed.
type TickConsumer struct {
	Schedule      *TieredSchedule
	Quantum       time.Duration
	ProgressEvery int              // completions between reports, 0 disables
	Observer      ProgressObserver // may be nil
	Pacer         Pacer
	Log           *logrus.Entry
	RunID         string
}

// Run ticks until the schedule is complete and returns the number of ticks.
func (c *TickConsumer) Run() int {
	ticks := 0
	reported := 0
	for !c.Schedule.IsComplete() {
		res := c.Schedule.Advance(c.Quantum)
		ticks++
		if res.Started {
			c.Log.Debugf("[clock %v] fcfs job started", res.Clock)
		}
		if c.Observer != nil && c.ProgressEvery > 0 {
			if n := res.Counts.Completed / c.ProgressEvery; n > reported {
				reported = n
				c.Observer.OnProgress(ProgressReport{
					RunID:          c.RunID,
					Clock:          res.Clock,
					Counts:         res.Counts,
					MeanTurnaround: res.MeanTurnaround(),
				})
			}
		}
		c.Pacer.Pause(c.Quantum)
	}
	c.Log.Infof("Service finished after %d ticks", ticks)
	return ticks
}
