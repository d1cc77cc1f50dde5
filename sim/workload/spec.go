// Package workload generates synthetic process populations for the
// scheduling simulator. Generation is deterministic per seed so every
// policy comparison can replay the identical workload.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Behavior classifies the burst-length pattern of a generated process.
// The mix exercises the three branches of the Femto predictor.
type Behavior string

const (
	// BehaviorStable produces bursts around a fixed base (base 30–60, ±5).
	BehaviorStable Behavior = "stable"
	// BehaviorRamping produces bursts growing linearly (start 5–10, +5 each).
	BehaviorRamping Behavior = "ramping"
	// BehaviorVolatile alternates short interactive bursts (2–5) with long
	// processing bursts (40–80).
	BehaviorVolatile Behavior = "volatile"
)

// Spec is the workload configuration, loadable from YAML.
type Spec struct {
	Seed        int64 `yaml:"seed"`
	Processes   int   `yaml:"processes"`
	MinBursts   int   `yaml:"min_bursts"`
	MaxBursts   int   `yaml:"max_bursts"`
	MaxGap      int   `yaml:"max_arrival_gap"` // inter-arrival gap drawn from [1, MaxGap]
	MinPriority int   `yaml:"min_priority"`
	MaxPriority int   `yaml:"max_priority"`
}

// DefaultSpec returns the spec used when no file is given: 20 processes,
// 8–12 bursts each, arrival gaps 1–3, priorities 1–5.
func DefaultSpec() Spec {
	return Spec{
		Seed:        42,
		Processes:   20,
		MinBursts:   8,
		MaxBursts:   12,
		MaxGap:      3,
		MinPriority: 1,
		MaxPriority: 5,
	}
}

// LoadSpec reads a Spec from a YAML file and validates it.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	spec := DefaultSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec before any generation happens.
func (s *Spec) Validate() error {
	if s.Processes <= 0 {
		return fmt.Errorf("processes must be positive, got %d", s.Processes)
	}
	if s.MinBursts <= 0 {
		return fmt.Errorf("min_bursts must be positive, got %d", s.MinBursts)
	}
	if s.MaxBursts < s.MinBursts {
		return fmt.Errorf("max_bursts (%d) must be >= min_bursts (%d)", s.MaxBursts, s.MinBursts)
	}
	if s.MaxGap <= 0 {
		return fmt.Errorf("max_arrival_gap must be positive, got %d", s.MaxGap)
	}
	if s.MinPriority < 1 {
		return fmt.Errorf("min_priority must be >= 1, got %d", s.MinPriority)
	}
	if s.MaxPriority < s.MinPriority {
		return fmt.Errorf("max_priority (%d) must be >= min_priority (%d)", s.MaxPriority, s.MinPriority)
	}
	return nil
}
