package sim

import (
	"github.com/sirupsen/logrus"
)

// FemtoWindow is the adaptive scheduler: round-robin dispatch with a
// quantum recomputed every cycle from an online per-process burst-length
// forecast. Selection is pure FIFO with no reordering; adaptivity lives
// entirely in the quantum.
//
// Per cycle: every ready process gets a fresh forecast (PredictBurst),
// the system quantum is the clamped median of those forecasts
// (SystemQuantum), and the ready-set head runs min(remaining, quantum)
// ticks. One context switch per dispatch. On burst completion the full
// accumulated time for that burst, not just the final partial run,
// enters the history window that feeds the next forecasts.
type FemtoWindow struct {
	ctxSwitches int
}

func (f *FemtoWindow) Name() string { return PolicyFemto }

func (f *FemtoWindow) ContextSwitches() int { return f.ctxSwitches }

func (f *FemtoWindow) Run(procs []*Process) ([]*Process, error) {
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

		quantum := SystemQuantum(ready)
		logrus.Debugf("t=%d: femto quantum=%d over %d ready", eng.clock, quantum, len(ready))

		p := ready[0]
		ready = ready[1:]
		f.ctxSwitches++
		eng.dispatch(p)

		slice := p.RemainingTime
		if slice > quantum {
			slice = quantum
		}
		eng.run(p, slice)

		if p.RemainingTime == 0 {
			// finishBurst records AccumulatedTime (the whole burst's actual
			// service time) into the history window and resets it.
			eng.finishBurst(p, &ready)
		} else {
			p.State = StateReady
			ready = append(ready, p)
		}
	}
	return eng.completed, nil
}
