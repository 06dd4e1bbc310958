package coresched

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StatsTestSuite struct {
	suite.Suite
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (ts *StatsTestSuite) TestRecordAccumulates() {
	var c counters
	c.record(2, 5, 0)
	c.record(4, 6, 4)

	snap := c.snapshot()
	ts.Equal(2, snap.FinishedJobs)
	ts.Equal(6, snap.WaitingSum)
	ts.Equal(11, snap.TurnaroundSum)
	ts.Equal(4, snap.ResponseSum)
}
