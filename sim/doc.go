// Package sim provides the discrete-event CPU scheduling engine for femto-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (queued → ready → running → completed) and state machine
//   - engine.go: Admission, idle ticks, and the shared burst-transition rule
//   - policy.go: The Policy contract and the name registry
//
// # Architecture
//
// The sim package holds the six dispatch policies and the shared engine
// mechanics they are built on; collaborators live in sub-packages:
//   - sim/workload/: synthetic workload generation (behavior-typed bursts)
//   - sim/report/: CSV emission and the comparative summary
//
// Each policy owns one private copy of the workload for the duration of a
// run. Runs are single-threaded and fully deterministic: time advances
// either tick-by-tick (preemptive policies) or by the length actually
// executed (non-preemptive and quantum policies). I/O between bursts is
// modeled as instantaneous re-admission to the ready set.
//
// # Key Interfaces
//
//   - Policy: the uniform "run to completion" contract all six dispatch
//     policies implement (fcfs, sjf, srtf, priority-rr, rr, femto)
//
// The Femto-Window policy additionally carries an online burst-length
// predictor (predictor.go) that derives one shared time quantum per
// dispatch cycle from recent per-process history.
package sim
