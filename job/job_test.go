package job

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JobTestSuite struct {
	suite.Suite
}

func TestJobTestSuite(t *testing.T) {
	suite.Run(t, new(JobTestSuite))
}

func (ts *JobTestSuite) TestNewSetsRemainingToRunTime() {
	j := New(1, 3, 10, 2)

	ts.Equal(1, j.ID)
	ts.Equal(2, j.Priority)
	ts.Equal(3, j.ArrivalTime)
	ts.Equal(10, j.OriginalRunTime)
	ts.Equal(10, j.RemainingRunTime)
	ts.Equal(3, j.LastCheckedTime)
	ts.False(j.HasResponded())
}

func (ts *JobTestSuite) TestHasRespondedAfterStamping() {
	j := New(1, 0, 5, 0)
	ts.False(j.HasResponded())

	j.ResponseTime = 4
	ts.True(j.HasResponded())
}
