package sim

import (
	"fmt"
	"sort"
)

// PriorityRR is preemptive priority scheduling with round-robin rotation
// inside each priority class. Before every one-tick dispatch the ready set
// is stable-sorted ascending by priority (lower = more urgent), preserving
// FIFO order within a class. Each process carries a consecutive-run
// counter: on reaching the quantum it is reset and the process rotates to
// the tail of its class; otherwise the process is reinserted at the head
// so it keeps running. A strictly higher-priority arrival still sorts
// ahead of it on the next iteration, which is what produces preemption.
//
// A context switch is recorded on every dispatch decision, including
// self-continuation. This accounting is intentionally simpler than SRTF's
// and must not be unified with it.
type PriorityRR struct {
	quantum     int
	ctxSwitches int
	streak      map[string]int // consecutive one-tick runs per process
}

// NewPriorityRR validates the quantum at construction.
func NewPriorityRR(quantum int) (*PriorityRR, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("priority-rr: quantum must be positive, got %d", quantum)
	}
	return &PriorityRR{quantum: quantum}, nil
}

func (pr *PriorityRR) Name() string { return PolicyPriorityRR }

func (pr *PriorityRR) ContextSwitches() int { return pr.ctxSwitches }

// Quantum returns the configured per-class rotation quantum.
func (pr *PriorityRR) Quantum() int { return pr.quantum }

func (pr *PriorityRR) Run(procs []*Process) ([]*Process, error) {
	eng, err := newEngine(procs)
	if err != nil {
		return nil, err
	}
	pr.ctxSwitches = 0
	pr.streak = make(map[string]int, len(procs))

	ready := make([]*Process, 0, len(procs))
	lastID := ""

	for !eng.done() {
		eng.admit(&ready)
		if len(ready) == 0 {
			eng.idle()
			continue
		}

		sort.SliceStable(ready, func(i, j int) bool {
			return ready[i].Priority < ready[j].Priority
		})

		p := ready[0]
		ready = ready[1:]
		pr.ctxSwitches++ // every dispatch decision, self-continuation included
		eng.dispatch(p)

		// The counter tracks consecutive runs; an interruption by another
		// process restarts it.
		if p.ID != lastID {
			pr.streak[p.ID] = 0
			lastID = p.ID
		}

		eng.run(p, 1)
		pr.streak[p.ID]++

		if p.RemainingTime == 0 {
			pr.streak[p.ID] = 0
			eng.finishBurst(p, &ready)
			continue
		}

		if pr.streak[p.ID] >= pr.quantum {
			// Quantum expired: rotate to the tail of the ready set. The
			// stable sort keeps the rotation within the priority class.
			pr.streak[p.ID] = 0
			p.State = StateReady
			ready = append(ready, p)
		} else {
			// Keep running unless a more urgent process sorts ahead.
			p.State = StateReady
			ready = append([]*Process{p}, ready...)
		}
	}
	return eng.completed, nil
}
