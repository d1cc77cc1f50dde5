package sim

// FCFS dispatches in pure arrival order, non-preemptively: each dispatch
// executes the entire remaining burst in one step. One context switch is
// recorded per dispatch.
type FCFS struct {
	ctxSwitches int
}

func (f *FCFS) Name() string { return PolicyFCFS }

func (f *FCFS) ContextSwitches() int { return f.ctxSwitches }

func (f *FCFS) Run(procs []*Process) ([]*Process, error) {
	eng, err := newEngine(procs)
	if err != nil {
		return nil, err
	}
	f.ctxSwitches = 0

	ready := make([]*Process, 0, len(procs))
	for !eng.done() {
		eng.admit(&ready)
		if len(ready) == 0 {
			eng.idle()
			continue
		}

		p := ready[0]
		ready = ready[1:]
		f.ctxSwitches++
		eng.dispatch(p)

		// Full burst in one step, no partial runs.
		eng.run(p, p.RemainingTime)
		eng.finishBurst(p, &ready)
	}
	return eng.completed, nil
}
