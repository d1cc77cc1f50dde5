// Shared engine mechanics used by every dispatch policy: arrival admission,
// idle ticks, dispatch accounting, and the burst-transition rule.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// engine holds the per-run simulation state every policy drives the same
// way: a monotonically advancing clock, the not-yet-arrived processes in
// arrival order, and the completed set in completion order.
type engine struct {
	clock     int
	pending   []*Process // sorted by arrival time, stable on ties
	admitIdx  int        // next pending process to admit
	completed []*Process
	total     int
}

// newEngine validates the workload and prepares per-run state. The input
// slice is not modified; the engine takes ownership of the processes
// themselves (the caller must hand in a private copy, see CloneAll).
func newEngine(procs []*Process) (*engine, error) {
	if err := ValidateWorkload(procs); err != nil {
		return nil, err
	}
	pending := append([]*Process(nil), procs...)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})
	return &engine{
		pending:   pending,
		completed: make([]*Process, 0, len(procs)),
		total:     len(procs),
	}, nil
}

// ValidateWorkload checks that a process set is runnable: unique IDs,
// non-empty strictly positive burst sequences, non-negative arrivals.
// Policies call this once before the run loop; validation failures are
// construction-time errors, never mid-run conditions.
func ValidateWorkload(procs []*Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("workload: no processes")
	}
	seen := make(map[string]bool, len(procs))
	for _, p := range procs {
		if p == nil {
			return fmt.Errorf("workload: nil process")
		}
		if seen[p.ID] {
			return fmt.Errorf("workload: duplicate process ID %q", p.ID)
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("workload: process %s has negative arrival time %d", p.ID, p.ArrivalTime)
		}
		if len(p.Bursts) == 0 {
			return fmt.Errorf("workload: process %s has an empty burst sequence", p.ID)
		}
		for i, b := range p.Bursts {
			if b <= 0 {
				return fmt.Errorf("workload: process %s burst %d has non-positive length %d", p.ID, i, b)
			}
		}
	}
	return nil
}

// done reports whether every input process has reached the completed set,
// the sole termination condition of a run.
func (e *engine) done() bool {
	return len(e.completed) == e.total
}

// admit moves every pending process whose arrival time has been reached
// into the ready set, in arrival order. Called at the top of every
// iteration of every policy's run loop.
func (e *engine) admit(ready *[]*Process) {
	for e.admitIdx < len(e.pending) && e.pending[e.admitIdx].ArrivalTime <= e.clock {
		p := e.pending[e.admitIdx]
		p.State = StateReady
		p.AccumulatedTime = 0
		*ready = append(*ready, p)
		e.admitIdx++
	}
}

// idle advances the clock by one tick with no dispatch.
func (e *engine) idle() {
	e.clock++
}

// dispatch marks a process running and fixes its start time on first
// dispatch. StartTime is written exactly once.
func (e *engine) dispatch(p *Process) {
	if p.StartTime == TimeUnset {
		p.StartTime = e.clock
	}
	p.State = StateRunning
}

// run executes ticks of the active burst: the clock advances by exactly
// the length executed, and the time is accrued against the current burst.
func (e *engine) run(p *Process, ticks int) {
	p.RemainingTime -= ticks
	p.AccumulatedTime += ticks
	e.clock += ticks
}

// finishBurst applies the shared burst-transition rule once a dispatch has
// reduced the active burst's remaining time to zero: record the total time
// spent in the burst, advance the burst index, and either re-admit the
// process at the current tick (I/O is instantaneous) or move it to the
// completed set permanently.
func (e *engine) finishBurst(p *Process, ready *[]*Process) {
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("finishBurst: process %s has %d ticks remaining", p.ID, p.RemainingTime))
	}
	p.BurstHistory = append(p.BurstHistory, p.AccumulatedTime)
	p.AccumulatedTime = 0
	p.CurrentBurstIndex++

	if p.CurrentBurstIndex < len(p.Bursts) {
		p.RemainingTime = p.Bursts[p.CurrentBurstIndex]
		p.State = StateReady
		*ready = append(*ready, p)
		return
	}

	p.CompletionTime = e.clock
	p.State = StateCompleted
	if p.CompletionTime == TimeUnset {
		// Unreachable while the clock is non-negative; a completed process
		// with an unset completion time is an internal invariant violation.
		panic(fmt.Sprintf("finishBurst: process %s completed with unset completion time", p.ID))
	}
	e.completed = append(e.completed, p)
	logrus.Debugf("t=%d: process %s completed (%d bursts)", e.clock, p.ID, len(p.BurstHistory))
}
