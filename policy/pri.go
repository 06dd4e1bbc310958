package policy

import "github.com/go-foundations/coresched/job"

// PRIPolicy is non-preemptive priority scheduling: the ready queue orders by
// ascending Priority (lower value = higher precedence), ties broken by
// ascending arrival time.
type PRIPolicy struct{}

func (PRIPolicy) Name() string { return "PRI" }

func (PRIPolicy) Less(a, b *job.Job) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}

func (PRIPolicy) Preemptive() bool { return false }

func (PRIPolicy) Quantum() bool { return false }
