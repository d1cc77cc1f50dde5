package sim

import (
	"fmt"
)

// RoundRobin dispatches the ready-set head FIFO and executes
// min(remaining, quantum) ticks in one step, with one context switch per
// dispatch. An unfinished burst requeues at the tail; a finished burst
// goes through the shared burst-transition rule.
type RoundRobin struct {
	quantum     int
	ctxSwitches int
}

// NewRoundRobin validates the quantum at construction.
func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("rr: quantum must be positive, got %d", quantum)
	}
	return &RoundRobin{quantum: quantum}, nil
}

func (r *RoundRobin) Name() string { return PolicyRR }

func (r *RoundRobin) ContextSwitches() int { return r.ctxSwitches }

// Quantum returns the configured fixed quantum.
func (r *RoundRobin) Quantum() int { return r.quantum }

func (r *RoundRobin) Run(procs []*Process) ([]*Process, error) {
	eng, err := newEngine(procs)
	if err != nil {
		return nil, err
	}
	r.ctxSwitches = 0

	ready := make([]*Process, 0, len(procs))
	for !eng.done() {
		eng.admit(&ready)
		if len(ready) == 0 {
			eng.idle()
			continue
		}

		p := ready[0]
		ready = ready[1:]
		r.ctxSwitches++
		eng.dispatch(p)

		slice := p.RemainingTime
		if slice > r.quantum {
			slice = r.quantum
		}
		eng.run(p, slice)

		if p.RemainingTime == 0 {
			eng.finishBurst(p, &ready)
		} else {
			p.State = StateReady
			ready = append(ready, p)
		}
	}
	return eng.completed, nil
}
