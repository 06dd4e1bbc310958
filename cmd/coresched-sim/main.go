// Command coresched-sim drives a trace file through every scheduling
// policy coresched implements and prints a per-policy averages table,
// mirroring the teacher's examples/ directory convention of shipping one
// runnable main per facet of the library it demonstrates, except here all
// six facets (policies) run out of one binary over the same trace.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/go-foundations/coresched"
	"github.com/go-foundations/coresched/policy"
)

const defaultCores = 2

var allPolicies = []policy.Kind{
	policy.FCFS,
	policy.SJF,
	policy.PSJF,
	policy.PRI,
	policy.PPRI,
	policy.RR,
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <trace.csv>", os.Args[0])
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("opening trace file: %v", err)
	}
	defer f.Close()

	trace, err := loadTrace(f)
	if err != nil {
		log.Fatalf("loading trace: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	rows := make([][]string, 0, len(allPolicies))
	for _, kind := range allPolicies {
		eng := coresched.NewEngine(defaultCores, kind, coresched.WithLogger(logger))
		stats := run(eng, kind, trace)
		eng.CleanUp()

		rows = append(rows, []string{
			eng.Policy(),
			fmt.Sprint(stats.FinishedJobs),
			fmt.Sprintf("%.2f", safeAvg(stats.WaitingSum, stats.FinishedJobs)),
			fmt.Sprintf("%.2f", safeAvg(stats.TurnaroundSum, stats.FinishedJobs)),
			fmt.Sprintf("%.2f", safeAvg(stats.ResponseSum, stats.FinishedJobs)),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Policy", "Finished", "Avg Wait", "Avg Turnaround", "Avg Response"})
	table.AppendBulk(rows)
	table.Render()
}

func safeAvg(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
