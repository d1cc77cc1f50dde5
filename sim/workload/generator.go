package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/femto-sim/femto-sim/sim"
)

// behaviorMix weights stable twice so most of the population rewards a
// scaled-up quantum, with enough ramping/volatile processes to stress the
// predictor's other branches.
var behaviorMix = []Behavior{BehaviorStable, BehaviorStable, BehaviorRamping, BehaviorVolatile}

// Generate creates a process population from a Spec.
// Deterministic given the same spec (seed included).
// Returns processes with sequential IDs and non-decreasing arrival times.
func Generate(spec *Spec) ([]*sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	procs := make([]*sim.Process, 0, spec.Processes)
	arrival := 0
	for i := 0; i < spec.Processes; i++ {
		behavior := behaviorMix[rng.Intn(len(behaviorMix))]
		bursts := generateBursts(rng, behavior, spec)
		priority := spec.MinPriority + rng.Intn(spec.MaxPriority-spec.MinPriority+1)

		p, err := sim.NewProcess(fmt.Sprintf("P%d", i), arrival, bursts, priority)
		if err != nil {
			return nil, fmt.Errorf("generate process %d: %w", i, err)
		}
		procs = append(procs, p)
		arrival += 1 + rng.Intn(spec.MaxGap)
	}
	logrus.Debugf("generated %d processes (seed=%d)", len(procs), spec.Seed)
	return procs, nil
}

// generateBursts synthesizes one process's burst sequence for a behavior.
func generateBursts(rng *rand.Rand, behavior Behavior, spec *Spec) []int {
	count := spec.MinBursts + rng.Intn(spec.MaxBursts-spec.MinBursts+1)
	bursts := make([]int, count)

	switch behavior {
	case BehaviorStable:
		base := 30 + rng.Intn(31)
		for i := range bursts {
			b := base + rng.Intn(11) - 5
			if b < 1 {
				b = 1
			}
			bursts[i] = b
		}
	case BehaviorRamping:
		start := 5 + rng.Intn(6)
		for i := range bursts {
			bursts[i] = start + i*5
		}
	case BehaviorVolatile:
		for i := range bursts {
			if rng.Intn(2) == 0 {
				bursts[i] = 2 + rng.Intn(4)
			} else {
				bursts[i] = 40 + rng.Intn(41)
			}
		}
	}
	return bursts
}
