package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Arrival pairs a job with the delay that precedes its admission.
type Arrival struct {
	Job   *Job
	Delay time.Duration
}

// ArrivalProducer injects jobs into the schedule, pacing each admission by
// its inter-arrival delay. It never observes completion.
type ArrivalProducer struct {
	Schedule *TieredSchedule
	Arrivals []Arrival
	Pacer    Pacer
	Log      *logrus.Entry
}

// Run admits every arrival in order and returns after the last one.
func (p *ArrivalProducer) Run() {
	for _, a := range p.Arrivals {
		p.Pacer.Pause(a.Delay)
		p.Schedule.Admit(a.Job)
		p.Log.Debugf("admitted job %d (size %v) after %v", a.Job.ID, a.Job.TotalDuration, a.Delay)
	}
	p.Log.Infof("Ended adding to queue: %d jobs admitted", len(p.Arrivals))
}
