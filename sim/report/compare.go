package report

import (
	"fmt"

	"github.com/femto-sim/femto-sim/sim"
)

// comparisonEntry names one policy run in the standard comparison set.
type comparisonEntry struct {
	policy  string
	quantum int
}

// RunComparison runs the full policy set over independent copies of one
// workload and returns one Record per run. Each policy receives its own
// deep copy, so results are independent of evaluation order. Round-robin
// runs twice, at the small and large quantum, to bracket the adaptive
// policy from both sides.
func RunComparison(procs []*sim.Process, smallQuantum, largeQuantum int) ([]Record, error) {
	if smallQuantum <= 0 || largeQuantum <= 0 {
		return nil, fmt.Errorf("comparison quanta must be positive, got %d and %d", smallQuantum, largeQuantum)
	}
	entries := []comparisonEntry{
		{sim.PolicyFCFS, 0},
		{sim.PolicySJF, 0},
		{sim.PolicySRTF, 0},
		{sim.PolicyPriorityRR, smallQuantum},
		{sim.PolicyRR, smallQuantum},
		{sim.PolicyRR, largeQuantum},
		{sim.PolicyFemto, 0},
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		policy, err := sim.NewPolicy(e.policy, e.quantum)
		if err != nil {
			return nil, fmt.Errorf("construct %s: %w", e.policy, err)
		}
		completed, err := policy.Run(sim.CloneAll(procs))
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", e.policy, err)
		}
		m := sim.ComputeMetrics(policy.Name(), completed, policy.ContextSwitches())
		records = append(records, FromMetrics(m, e.quantum, len(procs)))
	}
	return records, nil
}
