// sim/simulation.go
package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mlfq-sim/mlfq-sim/sim/trace"
)

// Simulation wires one arrival producer and one tick consumer to a shared
// schedule and aggregates the result.
type Simulation struct {
	RunID    string
	Config   Config
	Arrivals []Arrival
	Schedule *TieredSchedule
	Trace    *trace.SimulationTrace // nil unless WithTrace enabled it

	pacer    Pacer
	observer ProgressObserver
	sink     CompletionSink
	log      *logrus.Entry
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithPacer overrides the pacer derived from Config.Speedup.
func WithPacer(p Pacer) Option {
	return func(s *Simulation) { s.pacer = p }
}

// WithObserver sets the progress observer. The default logs through logrus.
func WithObserver(o ProgressObserver) Option {
	return func(s *Simulation) { s.observer = o }
}

// WithSink sets where completed-job records are written after the run.
func WithSink(sink CompletionSink) Option {
	return func(s *Simulation) { s.sink = sink }
}

// WithTrace records demotions and completions at the given level.
func WithTrace(cfg trace.TraceConfig) Option {
	return func(s *Simulation) {
		if cfg.Enabled() {
			s.Trace = trace.NewSimulationTrace(cfg)
		}
	}
}

// WithRunID replaces the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Simulation) { s.RunID = id }
}

// NewSimulation validates cfg and prepares a run over arrivals, keeping at
// most cfg.MaxJobs of them.
func NewSimulation(cfg Config, arrivals []Arrival, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.MaxJobs > 0 && len(arrivals) > cfg.MaxJobs {
		arrivals = arrivals[:cfg.MaxJobs]
	}
	s := &Simulation{
		RunID:    uuid.NewString(),
		Config:   cfg,
		Arrivals: arrivals,
		pacer:    NewPacer(cfg.Speedup),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logrus.WithField("run", s.RunID)
	if s.observer == nil {
		s.observer = LogProgressObserver{Log: s.log}
	}
	s.Schedule = NewTieredSchedule(len(arrivals), cfg, s.Trace)
	return s, nil
}

// Run starts the producer and consumer, waits for both, then writes every
// completed job to the sink. Sink errors are returned alongside the metrics.
func (s *Simulation) Run() (*Metrics, error) {
	s.log.Infof("Starting simulation with %d jobs, quantum=%v, thresholds fg=%v fcfs=%v",
		len(s.Arrivals), s.Config.Quantum, s.Config.ThresholdFG, s.Config.ThresholdFCFS)
	start := time.Now()

	producer := &ArrivalProducer{
		Schedule: s.Schedule,
		Arrivals: s.Arrivals,
		Pacer:    s.pacer,
		Log:      s.log.WithField("task", "producer"),
	}
	consumer := &TickConsumer{
		Schedule:      s.Schedule,
		Quantum:       s.Config.Quantum,
		ProgressEvery: s.Config.ProgressEvery,
		Observer:      s.observer,
		Pacer:         s.pacer,
		Log:           s.log.WithField("task", "consumer"),
		RunID:         s.RunID,
	}

	var wg sync.WaitGroup
	var ticks int
	wg.Add(2)
	go func() {
		defer wg.Done()
		producer.Run()
	}()
	go func() {
		defer wg.Done()
		ticks = consumer.Run()
	}()
	wg.Wait()

	m := NewMetrics(s.RunID, s.Schedule.Completed())
	m.Ticks = ticks
	m.WallTime = time.Since(start)
	s.log.Infof("Simulation complete: %d jobs, mean turnaround %v", m.CompletedJobs, m.MeanTurnaround())

	if s.sink == nil {
		return m, nil
	}
	return m, s.writeCompleted()
}

func (s *Simulation) writeCompleted() error {
	var writeErr error
	for _, c := range s.Schedule.Completed() {
		if err := s.sink.Write(c); err != nil {
			writeErr = err
			break
		}
	}
	return errors.Join(writeErr, s.sink.Close())
}
