package coresched

// Stats is a snapshot of the aggregate counters the engine maintains,
// mirroring the teacher's Metrics snapshot returned from GetMetrics.
type Stats struct {
	FinishedJobs  int
	WaitingSum    int
	TurnaroundSum int
	ResponseSum   int
}

// counters accumulates the running sums the four Avg* operations divide by.
// Updated only on completion, per SPEC_FULL.md §4.3.
type counters struct {
	finished      int
	waitingSum    int
	turnaroundSum int
	responseSum   int
}

func (c *counters) record(waiting, turnaround, response int) {
	c.waitingSum += waiting
	c.turnaroundSum += turnaround
	c.responseSum += response
	c.finished++
}

func (c *counters) snapshot() Stats {
	return Stats{
		FinishedJobs:  c.finished,
		WaitingSum:    c.waitingSum,
		TurnaroundSum: c.turnaroundSum,
		ResponseSum:   c.responseSum,
	}
}
