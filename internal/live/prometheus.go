package live

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/femto-sim/femto-sim/sim/report"
)

var (
	// Prometheus metrics, labeled by policy (e.g. "rr(q=5)", "femto").
	promMetrics = struct {
		rounds          prometheus.Counter
		avgWaiting      *prometheus.GaugeVec
		avgTurnaround   *prometheus.GaugeVec
		avgResponse     *prometheus.GaugeVec
		contextSwitches *prometheus.GaugeVec
		cpuUtilization  *prometheus.GaugeVec
	}{
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "femtosim_comparison_rounds_total",
			Help: "Number of completed comparison rounds",
		}),
		avgWaiting: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "femtosim_avg_waiting_ticks",
			Help: "Average waiting time of the last round, per policy",
		}, []string{"policy"}),
		avgTurnaround: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "femtosim_avg_turnaround_ticks",
			Help: "Average turnaround time of the last round, per policy",
		}, []string{"policy"}),
		avgResponse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "femtosim_avg_response_ticks",
			Help: "Average response time of the last round, per policy",
		}, []string{"policy"}),
		contextSwitches: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "femtosim_context_switches",
			Help: "Context switches of the last round, per policy",
		}, []string{"policy"}),
		cpuUtilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "femtosim_cpu_utilization_percent",
			Help: "CPU utilization of the last round, per policy",
		}, []string{"policy"}),
	}
)

func init() {
	prometheus.MustRegister(
		promMetrics.rounds,
		promMetrics.avgWaiting,
		promMetrics.avgTurnaround,
		promMetrics.avgResponse,
		promMetrics.contextSwitches,
		promMetrics.cpuUtilization,
	)
}

// updatePrometheus publishes one round's records.
func updatePrometheus(records []report.Record) {
	promMetrics.rounds.Inc()
	for _, r := range records {
		label := r.Label()
		promMetrics.avgWaiting.WithLabelValues(label).Set(r.AvgWaiting)
		promMetrics.avgTurnaround.WithLabelValues(label).Set(r.AvgTurnaround)
		promMetrics.avgResponse.WithLabelValues(label).Set(r.AvgResponse)
		promMetrics.contextSwitches.WithLabelValues(label).Set(float64(r.ContextSwitches))
		promMetrics.cpuUtilization.WithLabelValues(label).Set(r.CPUUtilization)
	}
}
