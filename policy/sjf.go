package policy

import "github.com/go-foundations/coresched/job"

// SJFPolicy is non-preemptive shortest-job-first: the ready queue orders by
// ascending total run time, fixed at arrival.
type SJFPolicy struct{}

func (SJFPolicy) Name() string { return "SJF" }

func (SJFPolicy) Less(a, b *job.Job) bool {
	return a.OriginalRunTime < b.OriginalRunTime
}

func (SJFPolicy) Preemptive() bool { return false }

func (SJFPolicy) Quantum() bool { return false }
