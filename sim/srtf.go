package sim

import (
	"sort"
)

// SRTF is preemptive shortest-remaining-time-first, re-evaluated every
// single tick: a mid-service process returns to the ready set before
// reselection, the ready set is stable-sorted ascending by the current
// burst's remaining time, and the head executes exactly one tick. A
// context switch is counted only when the selected process differs from
// the previous tick's selection (unlike priority-rr, which counts every
// dispatch decision).
type SRTF struct {
	ctxSwitches int
}

func (s *SRTF) Name() string { return PolicySRTF }

func (s *SRTF) ContextSwitches() int { return s.ctxSwitches }

func (s *SRTF) Run(procs []*Process) ([]*Process, error) {
	eng, err := newEngine(procs)
	if err != nil {
		return nil, err
	}
	s.ctxSwitches = 0

	ready := make([]*Process, 0, len(procs))
	var current *Process
	lastID := ""

	for !eng.done() {
		eng.admit(&ready)

		// Return the incumbent to the ready set before reselecting. It is
		// reinserted at the head so the stable sort keeps it ahead on ties,
		// avoiding spurious handoffs between equal-remaining processes.
		if current != nil {
			ready = append([]*Process{current}, ready...)
			current = nil
		}

		if len(ready) == 0 {
			eng.idle()
			continue
		}

		sort.SliceStable(ready, func(i, j int) bool {
			return ready[i].RemainingTime < ready[j].RemainingTime
		})

		p := ready[0]
		ready = ready[1:]
		if p.ID != lastID {
			s.ctxSwitches++
			lastID = p.ID
		}
		eng.dispatch(p)

		eng.run(p, 1)
		if p.RemainingTime == 0 {
			eng.finishBurst(p, &ready)
		} else {
			current = p
		}
	}
	return eng.completed, nil
}
