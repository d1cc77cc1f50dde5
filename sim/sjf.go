package sim

import (
	"sort"
)

// SJF is non-preemptive shortest-job-first: before each dispatch the ready
// set is reordered ascending by the current burst's remaining time only
// (not total remaining work), with ties preserving prior arrival order.
// Once dispatched, the full burst runs to completion even if a shorter job
// arrives mid-execution.
// Warning: SJF can starve long bursts under sustained load.
type SJF struct {
	ctxSwitches int
}

func (s *SJF) Name() string { return PolicySJF }

func (s *SJF) ContextSwitches() int { return s.ctxSwitches }

func (s *SJF) Run(procs []*Process) ([]*Process, error) {
	eng, err := newEngine(procs)
	if err != nil {
		return nil, err
	}
	s.ctxSwitches = 0

	ready := make([]*Process, 0, len(procs))
	for !eng.done() {
		eng.admit(&ready)
		if len(ready) == 0 {
			eng.idle()
			continue
		}

		sort.SliceStable(ready, func(i, j int) bool {
			return ready[i].RemainingTime < ready[j].RemainingTime
		})

		p := ready[0]
		ready = ready[1:]
		s.ctxSwitches++
		eng.dispatch(p)

		eng.run(p, p.RemainingTime)
		eng.finishBurst(p, &ready)
	}
	return eng.completed, nil
}
