package coresched

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/coresched/job"
)

type CoreTableTestSuite struct {
	suite.Suite
}

func TestCoreTableTestSuite(t *testing.T) {
	suite.Run(t, new(CoreTableTestSuite))
}

func (ts *CoreTableTestSuite) TestFindIdlePrefersLowestIndex() {
	t := newCoreTable(3)
	ts.Equal(0, t.findIdle())

	t.slots[0] = job.New(1, 0, 5, 0)
	ts.Equal(1, t.findIdle())

	t.slots[1] = job.New(2, 0, 5, 0)
	t.slots[2] = job.New(3, 0, 5, 0)
	ts.Equal(-1, t.findIdle())
}

func (ts *CoreTableTestSuite) TestWorstPSJF_LargestRemainingWins() {
	t := newCoreTable(3)
	t.slots[0] = job.New(1, 0, 5, 0)
	t.slots[1] = job.New(2, 0, 5, 0)
	t.slots[2] = job.New(3, 0, 5, 0)

	t.slots[0].RemainingRunTime = 2
	t.slots[1].RemainingRunTime = 9
	t.slots[2].RemainingRunTime = 4

	ts.Equal(1, t.worstPSJF())
}

func (ts *CoreTableTestSuite) TestWorstPSJF_TieKeepsFirstFound() {
	t := newCoreTable(2)
	t.slots[0] = job.New(1, 0, 5, 0)
	t.slots[1] = job.New(2, 0, 5, 0)
	t.slots[0].RemainingRunTime = 3
	t.slots[1].RemainingRunTime = 3

	ts.Equal(0, t.worstPSJF())
}

func (ts *CoreTableTestSuite) TestWorstPPRI_LargestPriorityWins() {
	t := newCoreTable(2)
	t.slots[0] = job.New(1, 0, 5, 1)
	t.slots[1] = job.New(2, 0, 5, 9)

	ts.Equal(1, t.worstPPRI())
}

func (ts *CoreTableTestSuite) TestWorstPPRI_TiesBreakByLatestArrival() {
	t := newCoreTable(2)
	t.slots[0] = job.New(1, 0, 5, 4)
	t.slots[1] = job.New(2, 3, 5, 4)

	ts.Equal(1, t.worstPPRI())
}
