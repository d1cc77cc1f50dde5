package sim

import (
	"testing"
)

func TestSRTF_PreemptsOnShorterArrival(t *testing.T) {
	procs := []*Process{
		mkProc(t, "P0", 0, []int{5}, 1),
		mkProc(t, "P1", 1, []int{2}, 1),
	}
	completed, policy := runPolicy(t, PolicySRTF, 0, procs)

	// P1 preempts at t=1, finishes at 3; P0 resumes and finishes at 7.
	if got := completionOf(t, completed, "P1"); got != 3 {
		t.Errorf("P1 completion = %d, want 3", got)
	}
	if got := completionOf(t, completed, "P0"); got != 7 {
		t.Errorf("P0 completion = %d, want 7", got)
	}
	// Handoffs: start P0, switch to P1, switch back to P0.
	if got := policy.ContextSwitches(); got != 3 {
		t.Errorf("context switches = %d, want 3", got)
	}
}

func TestSRTF_NoSwitchOnSelfContinuation(t *testing.T) {
	// A single process re-selected every tick counts one handoff total.
	procs := []*Process{mkProc(t, "P0", 0, []int{10}, 1)}
	completed, policy := runPolicy(t, PolicySRTF, 0, procs)

	if got := completed[0].CompletionTime; got != 10 {
		t.Errorf("completion = %d, want 10", got)
	}
	if got := policy.ContextSwitches(); got != 1 {
		t.Errorf("context switches = %d, want 1", got)
	}
}

func TestSRTF_IncumbentWinsTies(t *testing.T) {
	// An arrival with equal remaining time must not displace the runner.
	procs := []*Process{
		mkProc(t, "P0", 0, []int{4}, 1),
		mkProc(t, "P1", 1, []int{3}, 1), // equals P0's remaining at t=1
	}
	completed, policy := runPolicy(t, PolicySRTF, 0, procs)

	if got := completionOf(t, completed, "P0"); got != 4 {
		t.Errorf("P0 completion = %d, want 4", got)
	}
	if got := completionOf(t, completed, "P1"); got != 7 {
		t.Errorf("P1 completion = %d, want 7", got)
	}
	if got := policy.ContextSwitches(); got != 2 {
		t.Errorf("context switches = %d, want 2", got)
	}
}

func TestSRTF_AvgWaitingBeatsFCFSAndRR(t *testing.T) {
	procs := []*Process{
		mkProc(t, "A", 0, []int{8}, 1),
		mkProc(t, "B", 1, []int{4}, 1),
		mkProc(t, "C", 2, []int{9}, 1),
		mkProc(t, "D", 3, []int{5}, 1),
	}

	srtf, _ := runPolicy(t, PolicySRTF, 0, procs)
	fcfs, _ := runPolicy(t, PolicyFCFS, 0, procs)
	rr, _ := runPolicy(t, PolicyRR, 5, procs)

	srtfWait := avgWaiting(srtf)
	if fcfsWait := avgWaiting(fcfs); srtfWait > fcfsWait {
		t.Errorf("srtf waiting %.2f > fcfs waiting %.2f", srtfWait, fcfsWait)
	}
	if rrWait := avgWaiting(rr); srtfWait > rrWait {
		t.Errorf("srtf waiting %.2f > rr waiting %.2f", srtfWait, rrWait)
	}
}
