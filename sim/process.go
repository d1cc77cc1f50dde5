// Defines the Process struct that models an individual process in the simulation.
// Tracks arrival time, CPU burst sequence, execution progress, and the
// per-burst history consumed by the Femto-Window predictor.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateQueued    ProcessState = "queued"    // constructed, not yet arrived
	StateReady     ProcessState = "ready"     // arrived, awaiting CPU time
	StateRunning   ProcessState = "running"   // currently dispatched
	StateCompleted ProcessState = "completed" // all bursts finished
)

// TimeUnset is the sentinel for StartTime and CompletionTime before they
// are written. StartTime is written exactly once, on first dispatch;
// CompletionTime is written exactly once, when the final burst completes.
const TimeUnset = -1

// Process models a single process's lifecycle in the simulation.
// Each process has:
// - a fixed arrival time and ordered sequence of CPU burst lengths
// - progress tracking (current burst index, remaining time in burst)
// - start/completion timestamps for metric extraction
// - per-burst history and accumulated-time tracking for the Femto predictor
//
// A Process is exclusively owned by one policy run. Use Clone (or
// CloneAll) to hand independent copies to concurrent or sequential runs.
type Process struct {
	ID          string // Unique identifier for the process
	ArrivalTime int    // Tick at which the process enters the system
	Bursts      []int  // Ordered CPU burst lengths, all strictly positive
	Priority    int    // Lower = more urgent (used by priority-rr only)

	State             ProcessState
	CurrentBurstIndex int // 0-based index into Bursts, monotonically non-decreasing
	RemainingTime     int // Remaining ticks in the active burst
	StartTime         int // Tick of first dispatch (TimeUnset until then)
	CompletionTime    int // Tick of final burst completion (TimeUnset until then)

	// BurstHistory has one entry per completed burst: the total time
	// actually spent in that burst. AccumulatedTime is the time spent
	// in the current burst so far; it resets to zero at every burst
	// boundary. PredictedNext and Volatile are advisory outputs of the
	// Femto predictor and carry no meaning under other policies.
	BurstHistory    []int
	AccumulatedTime int
	PredictedNext   float64
	Volatile        bool
}

// NewProcess constructs a validated Process in the queued state.
// The burst sequence must be non-empty with strictly positive entries;
// an invalid workload is never retryable, so this fails before any run.
func NewProcess(id string, arrivalTime int, bursts []int, priority int) (*Process, error) {
	if id == "" {
		return nil, fmt.Errorf("process: empty ID")
	}
	if arrivalTime < 0 {
		return nil, fmt.Errorf("process %s: negative arrival time %d", id, arrivalTime)
	}
	if len(bursts) == 0 {
		return nil, fmt.Errorf("process %s: empty burst sequence", id)
	}
	for i, b := range bursts {
		if b <= 0 {
			return nil, fmt.Errorf("process %s: burst %d has non-positive length %d", id, i, b)
		}
	}
	if priority < 1 {
		return nil, fmt.Errorf("process %s: priority %d out of range (must be >= 1)", id, priority)
	}
	return &Process{
		ID:             id,
		ArrivalTime:    arrivalTime,
		Bursts:         append([]int(nil), bursts...),
		Priority:       priority,
		State:          StateQueued,
		RemainingTime:  bursts[0],
		StartTime:      TimeUnset,
		CompletionTime: TimeUnset,
		BurstHistory:   make([]int, 0, len(bursts)),
	}, nil
}

// Clone returns an independent deep copy with execution state reset,
// suitable for handing to another policy run.
func (p *Process) Clone() *Process {
	return &Process{
		ID:             p.ID,
		ArrivalTime:    p.ArrivalTime,
		Bursts:         append([]int(nil), p.Bursts...),
		Priority:       p.Priority,
		State:          StateQueued,
		RemainingTime:  p.Bursts[0],
		StartTime:      TimeUnset,
		CompletionTime: TimeUnset,
		BurstHistory:   make([]int, 0, len(p.Bursts)),
	}
}

// CloneAll deep-copies a process set so each policy run owns a private copy.
func CloneAll(procs []*Process) []*Process {
	out := make([]*Process, len(procs))
	for i, p := range procs {
		out[i] = p.Clone()
	}
	return out
}

// TotalBurstTime returns the sum of all burst lengths.
func (p *Process) TotalBurstTime() int {
	total := 0
	for _, b := range p.Bursts {
		total += b
	}
	return total
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, BurstIndex: %d, Remaining: %d, ArrivalTime: %d)",
		p.ID, p.State, p.CurrentBurstIndex, p.RemainingTime, p.ArrivalTime)
}
