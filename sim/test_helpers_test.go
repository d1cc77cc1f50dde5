package sim

import (
	"testing"
)

// mkProc builds a validated process or fails the test.
func mkProc(t *testing.T, id string, arrival int, bursts []int, priority int) *Process {
	t.Helper()
	p, err := NewProcess(id, arrival, bursts, priority)
	if err != nil {
		t.Fatalf("NewProcess(%s): %v", id, err)
	}
	return p
}

// completionOf returns the completion time of the process with the given
// ID, failing the test if it is absent.
func completionOf(t *testing.T, completed []*Process, id string) int {
	t.Helper()
	for _, p := range completed {
		if p.ID == id {
			return p.CompletionTime
		}
	}
	t.Fatalf("process %s not in completed set", id)
	return 0
}

// runPolicy constructs and runs a policy over a fresh clone of the workload.
func runPolicy(t *testing.T, name string, quantum int, procs []*Process) ([]*Process, Policy) {
	t.Helper()
	policy, err := NewPolicy(name, quantum)
	if err != nil {
		t.Fatalf("NewPolicy(%s): %v", name, err)
	}
	completed, err := policy.Run(CloneAll(procs))
	if err != nil {
		t.Fatalf("%s.Run: %v", name, err)
	}
	return completed, policy
}

// avgWaiting computes the average waiting time of a completed set.
func avgWaiting(completed []*Process) float64 {
	total := 0
	for _, p := range completed {
		total += (p.CompletionTime - p.ArrivalTime) - p.TotalBurstTime()
	}
	return float64(total) / float64(len(completed))
}
