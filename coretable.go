package coresched

import "github.com/go-foundations/coresched/job"

// coreTable is the fixed-size vector of core slots. Each slot holds at most
// one running job; a nil slot is idle. This mirrors the source's
// m_coreArr plus scheduler_idle_core_finder, generalized into its own type.
type coreTable struct {
	slots []*job.Job
}

func newCoreTable(cores int) coreTable {
	return coreTable{slots: make([]*job.Job, cores)}
}

func (t coreTable) len() int { return len(t.slots) }

// findIdle returns the smallest index whose slot is empty, or -1.
func (t coreTable) findIdle() int {
	for i, j := range t.slots {
		if j == nil {
			return i
		}
	}
	return -1
}

// worstPSJF returns the index of the running job with the largest
// RemainingRunTime, breaking ties by keeping the first (lowest-index) job
// found — the scan uses strict '>' so an equal or smaller value never
// replaces the incumbent.
func (t coreTable) worstPSJF() int {
	worst := -1
	best := -1
	for i, j := range t.slots {
		invariant(j != nil, "worstPSJF: core %d is idle", i)
		if j.RemainingRunTime > best {
			best = j.RemainingRunTime
			worst = i
		}
	}
	invariant(worst != -1, "worstPSJF: no running jobs")
	return worst
}

// worstPPRI returns the index of the running job with the numerically
// largest Priority (lowest precedence), ties broken by the latest
// ArrivalTime.
func (t coreTable) worstPPRI() int {
	invariant(len(t.slots) > 0, "worstPPRI: no cores")
	invariant(t.slots[0] != nil, "worstPPRI: core 0 is idle")
	worst := 0
	for i, j := range t.slots {
		invariant(j != nil, "worstPPRI: core %d is idle", i)
		incumbent := t.slots[worst]
		if j.Priority > incumbent.Priority {
			worst = i
		} else if j.Priority == incumbent.Priority && j.ArrivalTime > incumbent.ArrivalTime {
			worst = i
		}
	}
	return worst
}
