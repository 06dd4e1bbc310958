package policy

import "github.com/go-foundations/coresched/job"

// PPRIPolicy is preemptive priority scheduling: same ready-queue order as
// PRIPolicy, but a new arrival may evict the running job with the
// numerically largest Priority (lowest precedence), ties broken by latest
// arrival, if its own Priority is strictly smaller. The preemption-candidate
// scan lives on Engine, since it needs the core table.
type PPRIPolicy struct{}

func (PPRIPolicy) Name() string { return "PPRI" }

func (PPRIPolicy) Less(a, b *job.Job) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}

func (PPRIPolicy) Preemptive() bool { return true }

func (PPRIPolicy) Quantum() bool { return false }
