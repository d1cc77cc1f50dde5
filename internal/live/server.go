// Package live runs the policy comparison continuously and exposes the
// results to observers: each round generates a fresh workload, runs every
// policy on private copies, and broadcasts a result frame to websocket
// clients while updating Prometheus gauges.
package live

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/femto-sim/femto-sim/sim/report"
	"github.com/femto-sim/femto-sim/sim/workload"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Dashboard is served from arbitrary origins during development.
		return true
	},
}

// Frame is one round's result set, sent to every connected client.
type Frame struct {
	Type    string          `json:"type"`
	Round   int             `json:"round"`
	Seed    int64           `json:"seed"`
	Load    int             `json:"load"`
	Records []RecordPayload `json:"records"`
}

// RecordPayload is the wire form of a report.Record.
type RecordPayload struct {
	Policy          string  `json:"policy"`
	Quantum         int     `json:"quantum,omitempty"`
	AvgTurnaround   float64 `json:"avgTurnaround"`
	AvgWaiting      float64 `json:"avgWaiting"`
	AvgResponse     float64 `json:"avgResponse"`
	Throughput      float64 `json:"throughput"`
	CPUUtilization  float64 `json:"cpuUtilization"`
	ContextSwitches int     `json:"contextSwitches"`
}

// Config controls the live comparison loop.
type Config struct {
	Addr         string        // listen address, e.g. ":8080"
	Spec         workload.Spec // base workload spec; seed advances per round
	SmallQuantum int
	LargeQuantum int
	Interval     time.Duration // pacing between rounds
}

// Server owns the comparison loop and the connected websocket clients.
// The loop is the single writer of simulation state; client registration
// is the only shared structure and is mutex-guarded.
type Server struct {
	cfg     Config
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	round   int
}

// NewServer creates a live comparison server.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("live server workload spec: %w", err)
	}
	if cfg.SmallQuantum <= 0 || cfg.LargeQuantum <= 0 {
		return nil, fmt.Errorf("live server quanta must be positive, got %d and %d",
			cfg.SmallQuantum, cfg.LargeQuantum)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &Server{
		cfg:     cfg,
		clients: make(map[*websocket.Conn]bool),
	}, nil
}

// ListenAndServe starts the HTTP endpoints and the comparison loop.
// Blocks until the HTTP server fails.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/metrics", promhttp.Handler())

	go s.comparisonLoop()

	logrus.Infof("live comparison server listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, mux)
}

// handleWS upgrades a client connection and registers it for broadcasts.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("websocket upgrade: %v", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	logrus.Debugf("client connected (%d total)", len(s.clients))

	// Drain reads so pings/close frames are processed; drop on error.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[conn] {
		delete(s.clients, conn)
		conn.Close()
	}
}

// comparisonLoop runs one full policy comparison per tick and broadcasts
// the results. The seed advances each round so observers see varied
// workloads while any single round stays reproducible.
func (s *Server) comparisonLoop() {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for range ticker.C {
		spec := s.cfg.Spec
		spec.Seed += int64(s.round)

		procs, err := workload.Generate(&spec)
		if err != nil {
			logrus.Errorf("round %d workload: %v", s.round, err)
			continue
		}
		records, err := report.RunComparison(procs, s.cfg.SmallQuantum, s.cfg.LargeQuantum)
		if err != nil {
			logrus.Errorf("round %d comparison: %v", s.round, err)
			continue
		}

		s.round++
		updatePrometheus(records)
		s.broadcast(buildFrame(s.round, spec.Seed, records))
	}
}

func buildFrame(round int, seed int64, records []report.Record) Frame {
	frame := Frame{
		Type:  "results",
		Round: round,
		Seed:  seed,
	}
	for _, r := range records {
		frame.Load = r.Load
		frame.Records = append(frame.Records, RecordPayload{
			Policy:          r.Label(),
			Quantum:         r.Quantum,
			AvgTurnaround:   r.AvgTurnaround,
			AvgWaiting:      r.AvgWaiting,
			AvgResponse:     r.AvgResponse,
			Throughput:      r.Throughput,
			CPUUtilization:  r.CPUUtilization,
			ContextSwitches: r.ContextSwitches,
		})
	}
	return frame
}

// broadcast sends a frame to every connected client, dropping clients
// whose writes fail.
func (s *Server) broadcast(frame Frame) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(frame); err != nil {
			logrus.Debugf("dropping client: %v", err)
			s.dropClient(c)
		}
	}
}
