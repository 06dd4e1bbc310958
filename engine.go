package coresched

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/go-foundations/coresched/job"
	"github.com/go-foundations/coresched/policy"
	"github.com/go-foundations/coresched/queue"
)

// Engine is the scheduling state machine: it owns the core table, the ready
// queue, the installed policy, and the aggregate counters, and exposes the
// four event entry points a driving simulator calls in strict tick order.
//
// Engine carries no mutex. SPEC_FULL.md §5 guarantees the simulator never
// calls two operations concurrently, so there is nothing to guard.
type Engine struct {
	cores coreTable
	ready *queue.ReadyQueue
	pol   policy.Policy
	kind  policy.Kind
	stats counters

	log *logrus.Logger
	out io.Writer
}

// NewEngine allocates and starts an engine with cores core slots running
// kind. Options configure ambient behavior (logging, debug output) and are
// applied before start-up so the start-up log line itself honors them.
func NewEngine(cores int, kind policy.Kind, opts ...Option) *Engine {
	e := &Engine{log: defaultLogger(), out: defaultWriter()}
	for _, opt := range opts {
		opt(e)
	}
	e.StartUp(cores, kind)
	return e
}

// StartUp allocates cores empty core slots and installs the comparator for
// kind, zeroing the aggregate counters. Exactly-once per Engine; calling it
// twice on the same value silently discards all prior state, matching the
// source's "you may assume this will be called once" contract.
func (e *Engine) StartUp(cores int, kind policy.Kind) {
	invariant(cores >= 1, "StartUp: cores must be >= 1, got %d", cores)

	e.pol = policy.New(kind)
	e.kind = kind
	e.cores = newCoreTable(cores)
	e.ready = queue.New(e.pol)
	e.stats = counters{}
	if e.log == nil {
		e.log = defaultLogger()
	}
	if e.out == nil {
		e.out = defaultWriter()
	}

	e.log.WithFields(logrus.Fields{"cores": cores, "policy": e.pol.Name()}).Debug("scheduler started")
}

// NewJob announces a job's arrival and returns the core it was placed or
// preempted onto, or NoChange if it was only enqueued.
func (e *Engine) NewJob(id, t, runTime, priority int) int {
	invariant(runTime >= 1, "NewJob: runTime must be >= 1, got %d", runTime)

	j := job.New(id, t, runTime, priority)

	if c := e.cores.findIdle(); c != -1 {
		e.dispatch(c, j, t)
		if e.kind == policy.PSJF {
			j.LastCheckedTime = t
		}
		e.logEvent("dispatch", c, j, t)
		return c
	}

	switch e.kind {
	case policy.PSJF:
		if core, ok := e.preemptPSJF(j, t); ok {
			return core
		}
	case policy.PPRI:
		if core, ok := e.preemptPPRI(j, t); ok {
			return core
		}
	}

	e.ready.Push(j)
	e.logEvent("enqueue", -1, j, t)
	return NoChange
}

// preemptPSJF refreshes every running job's remaining time to t, then
// evicts the globally worst (largest-remaining) one in favor of n if n's
// own run time is strictly smaller.
func (e *Engine) preemptPSJF(n *job.Job, t int) (core int, preempted bool) {
	e.refreshRemaining(t)
	w := e.cores.worstPSJF()
	if victim := e.cores.slots[w]; victim.RemainingRunTime > n.OriginalRunTime {
		return e.preempt(w, n, t), true
	}
	return 0, false
}

// preemptPPRI evicts the globally worst (numerically largest-priority)
// running job in favor of n if n's own priority is strictly smaller.
func (e *Engine) preemptPPRI(n *job.Job, t int) (core int, preempted bool) {
	w := e.cores.worstPPRI()
	if victim := e.cores.slots[w]; victim.Priority > n.Priority {
		return e.preempt(w, n, t), true
	}
	return 0, false
}

// refreshRemaining brings every running job's RemainingRunTime up to tick t,
// the PSJF-only bookkeeping step performed before scanning for a preemption
// candidate (SPEC_FULL.md §4.3 step 2). It runs unconditionally, even when
// no preemption ends up happening.
func (e *Engine) refreshRemaining(t int) {
	for _, running := range e.cores.slots {
		invariant(running != nil, "refreshRemaining: idle core under PSJF preemption scan")
		running.RemainingRunTime -= t - running.LastCheckedTime
		running.LastCheckedTime = t
	}
}

// preempt evicts the job on core w in favor of n, applying the
// response-time-undo rule: a victim that was itself dispatched at this same
// tick (and so never actually ran) loses its response time rather than
// keeping a reading that never corresponded to real execution.
func (e *Engine) preempt(w int, n *job.Job, t int) int {
	v := e.cores.slots[w]
	if v.ResponseTime == t-v.ArrivalTime {
		v.ResponseTime = job.Unset
	}
	e.ready.Push(v)
	e.cores.slots[w] = nil
	e.dispatch(w, n, t)
	e.logEvent("preempt", w, n, t)
	return w
}

// dispatch installs j on core c and, if j has never been dispatched before,
// stamps its response time.
func (e *Engine) dispatch(c int, j *job.Job, t int) {
	e.cores.slots[c] = j
	if !j.HasResponded() {
		j.ResponseTime = t - j.ArrivalTime
	}
}

// JobFinished reports that the job on core is complete, folds its times
// into the aggregate counters, and refills the core from the ready queue if
// possible, returning the id of whatever now runs there, or NoChange.
func (e *Engine) JobFinished(core, id, t int) int {
	j := e.cores.slots[core]
	invariant(j != nil, "JobFinished: core %d is idle", core)
	invariant(j.ID == id, "JobFinished: core %d holds job %d, not %d", core, j.ID, id)

	waiting := t - j.ArrivalTime - j.OriginalRunTime
	turnaround := t - j.ArrivalTime
	e.stats.record(waiting, turnaround, j.ResponseTime)
	e.cores.slots[core] = nil
	e.logEvent("finish", core, j, t)

	if e.ready.Len() == 0 {
		return NoChange
	}

	next := e.ready.Poll()
	e.dispatch(core, next, t)
	if e.kind == policy.PSJF {
		next.LastCheckedTime = t
	}
	e.logEvent("dispatch", core, next, t)
	return next.ID
}

// QuantumExpired rotates the job on core back to the ready queue tail and
// dispatches the new head, returning its id, or NoChange if there was
// nothing to run before or after the rotation. Valid only under RR.
func (e *Engine) QuantumExpired(core, t int) int {
	invariant(e.pol.Quantum(), "QuantumExpired: policy %s does not support quantum expiration", e.pol.Name())

	running := e.cores.slots[core]
	if running == nil && e.ready.Len() == 0 {
		return NoChange
	}

	if running != nil {
		e.ready.Push(running)
		e.cores.slots[core] = nil
		e.logEvent("requeue", core, running, t)
	}

	next := e.ready.Poll()
	e.dispatch(core, next, t)
	e.logEvent("dispatch", core, next, t)
	return next.ID
}

// AvgWaitingTime returns the average waiting time across finished jobs.
// Undefined (divide by zero) before any job has finished.
func (e *Engine) AvgWaitingTime() float64 {
	return float64(e.stats.waitingSum) / float64(e.stats.finished)
}

// AvgTurnaroundTime returns the average turnaround time across finished
// jobs. Undefined before any job has finished.
func (e *Engine) AvgTurnaroundTime() float64 {
	return float64(e.stats.turnaroundSum) / float64(e.stats.finished)
}

// AvgResponseTime returns the average response time across finished jobs.
// Undefined before any job has finished.
func (e *Engine) AvgResponseTime() float64 {
	return float64(e.stats.responseSum) / float64(e.stats.finished)
}

// Stats returns a snapshot of the current aggregate counters.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}

// Cores returns the number of core slots the engine was started with.
func (e *Engine) Cores() int {
	return e.cores.len()
}

// Policy returns the display name of the installed policy.
func (e *Engine) Policy() string {
	return e.pol.Name()
}

// CoreJobID reports the id of the job currently running on core, and
// whether one is running at all. A driving simulator needs this to know
// when to call JobFinished or QuantumExpired next; the source exposes the
// equivalent by letting callers inspect its process-control-block array
// directly, which Go's encapsulation does not allow.
func (e *Engine) CoreJobID(core int) (id int, running bool) {
	j := e.cores.slots[core]
	if j == nil {
		return 0, false
	}
	return j.ID, true
}

// CleanUp drops every job still held in a core slot or the ready queue.
// After CleanUp the engine is unusable until StartUp is called again.
func (e *Engine) CleanUp() {
	for i := range e.cores.slots {
		e.cores.slots[i] = nil
	}
	e.ready = nil
	e.log.Debug("scheduler cleaned up")
}

func (e *Engine) logEvent(action string, core int, j *job.Job, t int) {
	e.log.WithFields(logrus.Fields{
		"tick":   t,
		"action": action,
		"job":    j.ID,
		"core":   core,
	}).Debug("scheduler event")
}
