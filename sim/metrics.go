// Metric extraction over completed process records. Pure functions of the
// fields the engine guarantees: turnaround = completion − arrival,
// waiting = turnaround − total burst time, response = start − arrival.
// All division guards live here; the engine itself never divides.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates per-run statistics for one policy,
// for final reporting and cross-policy comparison.
type Metrics struct {
	Policy          string
	Completed       int
	AvgTurnaround   float64 // avg(completion − arrival)
	AvgWaiting      float64 // avg(turnaround − total burst time)
	AvgResponse     float64 // avg(start − arrival)
	Throughput      float64 // completed / max completion time
	CPUUtilization  float64 // total burst time / max completion time × 100
	ContextSwitches int
}

// ComputeMetrics derives metrics from a completed process set. Safe on an
// empty set (all-zero metrics); passing a process that never completed is
// a programming error and fails loudly.
func ComputeMetrics(policy string, completed []*Process, ctxSwitches int) *Metrics {
	m := &Metrics{
		Policy:          policy,
		Completed:       len(completed),
		ContextSwitches: ctxSwitches,
	}
	if len(completed) == 0 {
		return m
	}

	turnarounds := make([]float64, len(completed))
	waits := make([]float64, len(completed))
	responses := make([]float64, len(completed))
	maxCompletion := 0
	totalBurst := 0

	for i, p := range completed {
		if p.CompletionTime == TimeUnset || p.StartTime == TimeUnset {
			panic(fmt.Sprintf("metrics: process %s reported complete with unset timestamps", p.ID))
		}
		busy := p.TotalBurstTime()
		tat := p.CompletionTime - p.ArrivalTime
		turnarounds[i] = float64(tat)
		waits[i] = float64(tat - busy)
		responses[i] = float64(p.StartTime - p.ArrivalTime)
		totalBurst += busy
		if p.CompletionTime > maxCompletion {
			maxCompletion = p.CompletionTime
		}
	}

	m.AvgTurnaround = stat.Mean(turnarounds, nil)
	m.AvgWaiting = stat.Mean(waits, nil)
	m.AvgResponse = stat.Mean(responses, nil)
	if maxCompletion > 0 {
		m.Throughput = float64(len(completed)) / float64(maxCompletion)
		m.CPUUtilization = float64(totalBurst) / float64(maxCompletion) * 100
	}
	return m
}

// Print displays the aggregated metrics for one policy run.
func (m *Metrics) Print() {
	fmt.Printf("=== %s ===\n", m.Policy)
	fmt.Printf("Completed Processes  : %d\n", m.Completed)
	fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaround)
	fmt.Printf("Average Waiting      : %.2f ticks\n", m.AvgWaiting)
	fmt.Printf("Average Response     : %.2f ticks\n", m.AvgResponse)
	fmt.Printf("Throughput           : %.4f proc/tick\n", m.Throughput)
	fmt.Printf("CPU Utilization      : %.2f%%\n", m.CPUUtilization)
	fmt.Printf("Context Switches     : %d\n", m.ContextSwitches)
}
