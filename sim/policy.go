// The Policy contract every dispatch policy implements, plus the name
// registry used by the CLI and the comparison driver.

package sim

import (
	"fmt"
)

// Policy is the uniform contract for a dispatch policy: given a private
// process set, run it to completion and return the same processes fully
// mutated, ordered by completion time.
//
// Run takes exclusive ownership of the processes for its duration; callers
// comparing policies must hand each Run an independent copy (CloneAll).
// ContextSwitches reports the CPU handoff count of the most recent run.
// Note that priority-rr counts a switch on every dispatch decision
// including self-continuation, while srtf counts only true handoffs; this
// accounting difference is deliberate and preserved in comparisons.
type Policy interface {
	Name() string
	Run(procs []*Process) ([]*Process, error)
	ContextSwitches() int
}

// Valid policy names accepted by NewPolicy.
const (
	PolicyFCFS       = "fcfs"
	PolicySJF        = "sjf"
	PolicySRTF       = "srtf"
	PolicyPriorityRR = "priority-rr"
	PolicyRR         = "rr"
	PolicyFemto      = "femto"
)

var validPolicies = map[string]bool{
	PolicyFCFS:       true,
	PolicySJF:        true,
	PolicySRTF:       true,
	PolicyPriorityRR: true,
	PolicyRR:         true,
	PolicyFemto:      true,
}

// IsValidPolicy returns true if the given name is a recognized policy.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// PolicyNames returns the recognized policy names in comparison order.
func PolicyNames() []string {
	return []string{PolicyFCFS, PolicySJF, PolicySRTF, PolicyPriorityRR, PolicyRR, PolicyFemto}
}

// NewPolicy creates a Policy by name. The quantum applies to "rr" and
// "priority-rr" only and must be positive for them; a non-positive quantum
// is a fatal configuration error caught here, never during the run loop.
// Other policies ignore the quantum.
func NewPolicy(name string, quantum int) (Policy, error) {
	switch name {
	case PolicyFCFS:
		return &FCFS{}, nil
	case PolicySJF:
		return &SJF{}, nil
	case PolicySRTF:
		return &SRTF{}, nil
	case PolicyPriorityRR:
		return NewPriorityRR(quantum)
	case PolicyRR:
		return NewRoundRobin(quantum)
	case PolicyFemto:
		return &FemtoWindow{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (valid: %v)", name, PolicyNames())
	}
}
