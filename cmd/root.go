package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/femto-sim/femto-sim/sim"
	"github.com/femto-sim/femto-sim/sim/report"
	"github.com/femto-sim/femto-sim/sim/workload"
)

var (
	// CLI flags shared across subcommands
	seed      int64  // Seed for workload generation
	logLevel  string // Log verbosity level
	specPath  string // Optional YAML workload spec
	processes int    // Number of processes to generate

	// run flags
	policyName string // Which dispatch policy to run
	quantum    int    // Quantum for rr / priority-rr

	// compare flags
	loads        []int  // Workload sizes to sweep
	smallQuantum int    // Fixed-quantum baseline (thrashing side)
	largeQuantum int    // Fixed-quantum baseline (sluggish side)
	csvDir       string // Directory for per-load CSV output ("" = skip)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "femto-sim",
	Short: "Comparative CPU-scheduling simulator with an adaptive quantum policy",
}

// loadWorkloadSpec resolves the workload spec from --workload or flags.
func loadWorkloadSpec() (*workload.Spec, error) {
	if specPath != "" {
		return workload.LoadSpec(specPath)
	}
	spec := workload.DefaultSpec()
	spec.Seed = seed
	if processes > 0 {
		spec.Processes = processes
	}
	return &spec, nil
}

// runCmd executes one policy on a generated workload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single dispatch policy and print its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if !sim.IsValidPolicy(policyName) {
			logrus.Fatalf("Unknown policy %q (valid: %v)", policyName, sim.PolicyNames())
		}
		spec, err := loadWorkloadSpec()
		if err != nil {
			logrus.Fatalf("Workload spec: %v", err)
		}
		procs, err := workload.Generate(spec)
		if err != nil {
			logrus.Fatalf("Workload generation: %v", err)
		}

		policy, err := sim.NewPolicy(policyName, quantum)
		if err != nil {
			logrus.Fatalf("Policy construction: %v", err)
		}

		logrus.Infof("Running %s over %d processes (seed=%d)", policyName, len(procs), spec.Seed)
		completed, err := policy.Run(procs)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		m := sim.ComputeMetrics(policy.Name(), completed, policy.ContextSwitches())
		m.Print()
	},
}

// compareCmd runs every policy on independent copies of the same workload,
// across one or more load levels.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all policies on identical workload copies and compare",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		baseSpec, err := loadWorkloadSpec()
		if err != nil {
			logrus.Fatalf("Workload spec: %v", err)
		}

		var all []report.Record
		for _, load := range loads {
			spec := *baseSpec
			spec.Processes = load
			procs, err := workload.Generate(&spec)
			if err != nil {
				logrus.Fatalf("Workload generation (load=%d): %v", load, err)
			}

			records, err := report.RunComparison(procs, smallQuantum, largeQuantum)
			if err != nil {
				logrus.Fatalf("Comparison (load=%d): %v", load, err)
			}
			all = append(all, records...)

			printTable(records)
			if csvDir != "" {
				if err := writeLoadCSV(csvDir, load, records); err != nil {
					logrus.Fatalf("CSV output: %v", err)
				}
			}
		}

		summary, err := report.Summarize(all)
		if err != nil {
			logrus.Fatalf("Summary: %v", err)
		}
		fmt.Print(summary.Format())
	},
}

// printTable renders one load level's records as an aligned table.
func printTable(records []report.Record) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("\n--- Load: %d processes ---\n", records[0].Load)
	fmt.Printf("%-18s | %-10s | %-10s | %-10s | %-10s\n",
		"Policy", "Avg TAT", "Avg WT", "Avg RT", "Ctx Switch")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range records {
		fmt.Printf("%-18s | %-10.2f | %-10.2f | %-10.2f | %-10d\n",
			r.Label(), r.AvgTurnaround, r.AvgWaiting, r.AvgResponse, r.ContextSwitches)
	}
}

// writeLoadCSV emits metrics_<load>_processes.csv under dir.
func writeLoadCSV(dir string, load int, records []report.Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create csv dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("metrics_%d_processes.csv", load))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, records); err != nil {
		return err
	}
	logrus.Infof("Wrote %s", path)
	return nil
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for workload generation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&specPath, "workload", "", "Path to a YAML workload spec (overrides generation flags)")
	rootCmd.PersistentFlags().IntVar(&processes, "processes", 0, "Number of processes to generate (0 = spec default)")

	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFemto, "Dispatch policy (fcfs, sjf, srtf, priority-rr, rr, femto)")
	runCmd.Flags().IntVar(&quantum, "quantum", 5, "Time quantum for rr and priority-rr")

	compareCmd.Flags().IntSliceVar(&loads, "loads", []int{20}, "Comma-separated workload sizes to sweep")
	compareCmd.Flags().IntVar(&smallQuantum, "small-quantum", 5, "Small fixed quantum for the rr baseline")
	compareCmd.Flags().IntVar(&largeQuantum, "large-quantum", 20, "Large fixed quantum for the rr baseline")
	compareCmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory for per-load CSV files (empty = no CSV)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
