// Package policy defines the six scheduling disciplines the engine can run
// under, factored out of the engine the same way the teacher corpus factors
// job-distribution strategies out of a worker pool: one small interface,
// one concrete type per discipline, and a factory that resolves a tag to an
// instance.
package policy

import "github.com/go-foundations/coresched/job"

// Kind tags one of the six supported scheduling disciplines.
type Kind int

const (
	FCFS Kind = iota
	SJF
	PSJF
	PRI
	PPRI
	RR
)

// String returns the human-readable policy name, used for logging.
func (k Kind) String() string {
	switch k {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case PSJF:
		return "PSJF"
	case PRI:
		return "PRI"
	case PPRI:
		return "PPRI"
	case RR:
		return "RR"
	default:
		return "UNKNOWN"
	}
}

// Policy is the total order and preemption contract a scheduling discipline
// must provide. Ready-queue ordering and the QuantumExpired check go
// through this interface. Engine branches on Kind for the preemption
// decision on arrival (which running job is the candidate, and whether to
// evict it) and for PSJF's LastCheckedTime bookkeeping, since those need
// the core table, which Policy never sees; Engine does not call Preemptive.
type Policy interface {
	// Name returns the policy's display name.
	Name() string

	// Less defines the ready-queue total order: Less(a, b) reports whether a
	// must be polled from the queue before b.
	Less(a, b *job.Job) bool

	// Preemptive reports whether NewJob may evict a running job when no core
	// is idle.
	Preemptive() bool

	// Quantum reports whether QuantumExpired is a valid operation under this
	// policy.
	Quantum() bool
}

// New resolves a Kind to its Policy implementation.
func New(kind Kind) Policy {
	switch kind {
	case FCFS:
		return FCFSPolicy{}
	case SJF:
		return SJFPolicy{}
	case PSJF:
		return PSJFPolicy{}
	case PRI:
		return PRIPolicy{}
	case PPRI:
		return PPRIPolicy{}
	case RR:
		return RRPolicy{}
	default:
		return FCFSPolicy{}
	}
}
