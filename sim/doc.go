// Package sim provides the core of the multi-level feedback queue simulator.
//
// # Reading Guide
//
// Start with these three files to understand the scheduling kernel:
//   - job.go: Job lifecycle (admitted → served → completed) and its timestamps
//   - schedule.go: TieredSchedule, the tick algorithm and the demotion policy
//   - simulation.go: the producer/consumer wiring and result aggregation
//
// # Architecture
//
// A TieredSchedule holds three tiers: foreground (preemptive round-robin),
// background (round-robin) and FCFS (non-preemptive). Jobs enter the
// foreground tier and only ever move down as their lifetime service exceeds
// Config.ThresholdFG and then Config.ThresholdFCFS.
//
// Two goroutines share the schedule. ArrivalProducer admits jobs after their
// inter-arrival delays; TickConsumer calls Advance with a fixed quantum until
// every job has completed. The schedule's mutex is the only synchronization
// point between them.
//
// Sub-packages:
//   - sim/workload/: loading job sizes and inter-arrival delays, synthetic generation
//   - sim/trace/: demotion and completion trace recording
package sim
