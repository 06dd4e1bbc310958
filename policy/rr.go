package policy

import "github.com/go-foundations/coresched/job"

// RRPolicy is round-robin: non-preemptive on arrival (a new job never
// preempts a running one), arrival-order ready queue, quantum-driven
// rotation handled entirely by Engine.QuantumExpired.
type RRPolicy struct{}

func (RRPolicy) Name() string { return "RR" }

func (RRPolicy) Less(a, b *job.Job) bool { return false }

func (RRPolicy) Preemptive() bool { return false }

func (RRPolicy) Quantum() bool { return true }
