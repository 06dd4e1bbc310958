package queue

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/coresched/job"
	"github.com/go-foundations/coresched/policy"
)

type QueueTestSuite struct {
	suite.Suite
}

func TestQueueTestSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (ts *QueueTestSuite) TestEmptyQueue() {
	q := New(policy.FCFSPolicy{})
	ts.Equal(0, q.Len())
	ts.Nil(q.Peek())
	ts.Nil(q.Poll())
}

func (ts *QueueTestSuite) TestFCFS_PreservesPushOrder() {
	q := New(policy.FCFSPolicy{})

	j1 := job.New(1, 0, 5, 0)
	j2 := job.New(2, 1, 5, 0)
	j3 := job.New(3, 2, 5, 0)

	q.Push(j1)
	q.Push(j2)
	q.Push(j3)

	ts.Equal(3, q.Len())
	ts.Equal(1, q.Poll().ID)
	ts.Equal(2, q.Poll().ID)
	ts.Equal(3, q.Poll().ID)
	ts.Equal(0, q.Len())
}

func (ts *QueueTestSuite) TestSJF_OrdersByRunTime() {
	q := New(policy.SJFPolicy{})

	long := job.New(1, 0, 9, 0)
	short := job.New(2, 1, 2, 0)
	mid := job.New(3, 2, 5, 0)

	q.Push(long)
	q.Push(short)
	q.Push(mid)

	ts.Equal(2, q.Poll().ID)
	ts.Equal(3, q.Poll().ID)
	ts.Equal(1, q.Poll().ID)
}

func (ts *QueueTestSuite) TestSJF_TiesBreakByPushOrder() {
	q := New(policy.SJFPolicy{})

	first := job.New(1, 0, 5, 0)
	second := job.New(2, 1, 5, 0)

	q.Push(first)
	q.Push(second)

	ts.Equal(1, q.Poll().ID)
	ts.Equal(2, q.Poll().ID)
}

func (ts *QueueTestSuite) TestPeekDoesNotRemove() {
	q := New(policy.FCFSPolicy{})
	q.Push(job.New(1, 0, 5, 0))

	ts.Equal(1, q.Peek().ID)
	ts.Equal(1, q.Len())
	ts.Equal(1, q.Poll().ID)
	ts.Equal(0, q.Len())
}

func (ts *QueueTestSuite) TestJobsReturnsAllQueued() {
	q := New(policy.FCFSPolicy{})
	q.Push(job.New(1, 0, 5, 0))
	q.Push(job.New(2, 1, 5, 0))

	ts.Len(q.Jobs(), 2)
}
