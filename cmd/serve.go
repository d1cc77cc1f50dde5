package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/femto-sim/femto-sim/internal/live"
)

var (
	serveAddr     string
	serveInterval time.Duration
)

// serveCmd runs the live comparison server: one full policy comparison per
// interval, results streamed to websocket clients and exported to
// Prometheus at /metrics.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream continuous policy comparisons over websocket",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := loadWorkloadSpec()
		if err != nil {
			logrus.Fatalf("Workload spec: %v", err)
		}

		server, err := live.NewServer(live.Config{
			Addr:         serveAddr,
			Spec:         *spec,
			SmallQuantum: smallQuantum,
			LargeQuantum: largeQuantum,
			Interval:     serveInterval,
		})
		if err != nil {
			logrus.Fatalf("Server construction: %v", err)
		}
		if err := server.ListenAndServe(); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", time.Second, "Pacing between comparison rounds")
	serveCmd.Flags().IntVar(&smallQuantum, "small-quantum", 5, "Small fixed quantum for the rr baseline")
	serveCmd.Flags().IntVar(&largeQuantum, "large-quantum", 20, "Large fixed quantum for the rr baseline")

	rootCmd.AddCommand(serveCmd)
}
