// Package report turns per-run metrics into comparison artifacts: CSV rows
// for offline analysis and a textual summary of the adaptive policy against
// its fixed-quantum and clairvoyant baselines.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/femto-sim/femto-sim/sim"
)

// Record is one policy's result row at one load level.
type Record struct {
	Policy          string
	Quantum         int // 0 when the policy takes no quantum
	Load            int // number of processes in the workload
	Completed       int
	AvgTurnaround   float64
	AvgWaiting      float64
	AvgResponse     float64
	Throughput      float64
	CPUUtilization  float64
	ContextSwitches int
}

// FromMetrics builds a Record from one run's metrics.
func FromMetrics(m *sim.Metrics, quantum, load int) Record {
	return Record{
		Policy:          m.Policy,
		Quantum:         quantum,
		Load:            load,
		Completed:       m.Completed,
		AvgTurnaround:   m.AvgTurnaround,
		AvgWaiting:      m.AvgWaiting,
		AvgResponse:     m.AvgResponse,
		Throughput:      m.Throughput,
		CPUUtilization:  m.CPUUtilization,
		ContextSwitches: m.ContextSwitches,
	}
}

// Label renders the policy name with its quantum, e.g. "rr(q=5)".
func (r Record) Label() string {
	if r.Quantum > 0 {
		return fmt.Sprintf("%s(q=%d)", r.Policy, r.Quantum)
	}
	return r.Policy
}

// csvHeader matches the columns the analysis tooling expects.
var csvHeader = []string{
	"Name", "Load", "Completed", "Avg_TAT", "Avg_WT", "Avg_RT",
	"Throughput", "Utilization", "Ctx_Switch",
}

// WriteCSV emits records as CSV, one row per policy run.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Label(),
			strconv.Itoa(r.Load),
			strconv.Itoa(r.Completed),
			fmt.Sprintf("%.2f", r.AvgTurnaround),
			fmt.Sprintf("%.2f", r.AvgWaiting),
			fmt.Sprintf("%.2f", r.AvgResponse),
			fmt.Sprintf("%.6f", r.Throughput),
			fmt.Sprintf("%.2f", r.CPUUtilization),
			strconv.Itoa(r.ContextSwitches),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.Label(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
