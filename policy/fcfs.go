package policy

import "github.com/go-foundations/coresched/job"

// FCFSPolicy runs jobs in arrival order, non-preemptively. It never
// reorders the ready queue: Less never reports a before b, so the ready
// queue's push-order tie-break alone decides and the queue behaves as a
// plain FIFO.
type FCFSPolicy struct{}

func (FCFSPolicy) Name() string { return "FCFS" }

func (FCFSPolicy) Less(a, b *job.Job) bool { return false }

func (FCFSPolicy) Preemptive() bool { return false }

func (FCFSPolicy) Quantum() bool { return false }
