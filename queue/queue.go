// Package queue implements the scheduler's ordered ready queue: a binary
// heap over a policy-supplied comparator. The heap mechanics (slice
// storage, bubbleUp/bubbleDown) are adapted directly from the teacher's own
// hand-rolled PriorityQueue, stripped of its concurrency guards (the engine
// is single-threaded, see SPEC_FULL.md §5) and its fairness bookkeeping
// (not part of any of the six named policies), and generalized so the
// ordering comes from an injected policy.Policy instead of a fixed
// "priority, then FIFO" rule.
package queue

import (
	"github.com/go-foundations/coresched/job"
	"github.com/go-foundations/coresched/policy"
)

// entry pairs a queued job with the sequence number it was pushed with.
// Some policies' comparators never distinguish two jobs (FCFS, RR, or any
// policy comparing two jobs with identical keys); the sequence number
// breaks those ties by earliest push, turning the policy's partial order
// into the total, stable order SPEC_FULL.md §4.1 requires.
type entry struct {
	job *job.Job
	seq uint64
}

// ReadyQueue is the pending-job container. It orders jobs by the installed
// policy's comparator and is otherwise policy-agnostic.
type ReadyQueue struct {
	pol     policy.Policy
	items   []entry
	nextSeq uint64
}

// New creates an empty ready queue ordered by pol.
func New(pol policy.Policy) *ReadyQueue {
	return &ReadyQueue{pol: pol}
}

// Push inserts j into the queue.
func (q *ReadyQueue) Push(j *job.Job) {
	q.items = append(q.items, entry{job: j, seq: q.nextSeq})
	q.nextSeq++
	q.bubbleUp(len(q.items) - 1)
}

// Poll removes and returns the head of the queue (nil if empty).
func (q *ReadyQueue) Poll() *job.Job {
	if len(q.items) == 0 {
		return nil
	}

	head := q.items[0].job

	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items = q.items[:last]

	if len(q.items) > 0 {
		q.bubbleDown(0)
	}

	return head
}

// Peek returns the head of the queue without removing it (nil if empty).
func (q *ReadyQueue) Peek() *job.Job {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0].job
}

// Len returns the number of pending jobs.
func (q *ReadyQueue) Len() int {
	return len(q.items)
}

// Jobs returns the queued jobs in heap storage order (not necessarily poll
// order beyond the head); used by ShowQueue for debug dumping. Callers must
// not mutate the returned slice.
func (q *ReadyQueue) Jobs() []*job.Job {
	out := make([]*job.Job, len(q.items))
	for i, e := range q.items {
		out[i] = e.job
	}
	return out
}

// before reports whether a must be polled strictly before b: the policy
// comparator if it distinguishes them, otherwise earliest-push order.
func (q *ReadyQueue) before(a, b entry) bool {
	if q.pol.Less(a.job, b.job) {
		return true
	}
	if q.pol.Less(b.job, a.job) {
		return false
	}
	return a.seq < b.seq
}

// bubbleUp maintains the heap property by bubbling up an element, adapted
// from the teacher's PriorityQueue.bubbleUp.
func (q *ReadyQueue) bubbleUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if q.before(q.items[index], q.items[parent]) {
			q.items[parent], q.items[index] = q.items[index], q.items[parent]
			index = parent
		} else {
			break
		}
	}
}

// bubbleDown maintains the heap property by bubbling down an element,
// adapted from the teacher's PriorityQueue.bubbleDown.
func (q *ReadyQueue) bubbleDown(index int) {
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index

		if left < len(q.items) && q.before(q.items[left], q.items[smallest]) {
			smallest = left
		}
		if right < len(q.items) && q.before(q.items[right], q.items[smallest]) {
			smallest = right
		}
		if smallest == index {
			break
		}

		q.items[index], q.items[smallest] = q.items[smallest], q.items[index]
		index = smallest
	}
}
