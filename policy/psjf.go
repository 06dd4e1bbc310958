package policy

import "github.com/go-foundations/coresched/job"

// PSJFPolicy is preemptive shortest-job-first: the ready queue orders by
// ascending remaining run time, and a new arrival may evict the running job
// with the largest remaining run time if its own run time is strictly
// smaller. The remaining-time refresh and the preemption-candidate scan
// live on Engine (they need the core table, which Policy does not see);
// this type only carries the ready-queue ordering and the Preemptive/Quantum
// tags.
type PSJFPolicy struct{}

func (PSJFPolicy) Name() string { return "PSJF" }

func (PSJFPolicy) Less(a, b *job.Job) bool {
	return a.RemainingRunTime < b.RemainingRunTime
}

func (PSJFPolicy) Preemptive() bool { return true }

func (PSJFPolicy) Quantum() bool { return false }
