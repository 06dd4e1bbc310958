package coresched

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// ShowQueue renders the current core table and ready queue to the engine's
// configured writer (os.Stdout by default), using the same table-rendering
// library an independently retrieved CPU-scheduler simulator in this
// corpus uses to report its Gantt/averages tables. It is optional,
// side-effect only, and never consulted by any scheduling decision.
func (e *Engine) ShowQueue() {
	table := tablewriter.NewWriter(e.out)
	table.SetHeader([]string{"Core", "Job", "Priority", "Remaining", "Response"})

	for i, j := range e.cores.slots {
		if j == nil {
			table.Append([]string{fmt.Sprint(i), "idle", "", "", ""})
			continue
		}
		table.Append([]string{
			fmt.Sprint(i),
			fmt.Sprint(j.ID),
			fmt.Sprint(j.Priority),
			fmt.Sprint(j.RemainingRunTime),
			fmt.Sprint(j.ResponseTime),
		})
	}

	for _, j := range e.ready.Jobs() {
		table.Append([]string{
			"queue",
			fmt.Sprint(j.ID),
			fmt.Sprint(j.Priority),
			fmt.Sprint(j.RemainingRunTime),
			fmt.Sprint(j.ResponseTime),
		})
	}

	table.SetFooter([]string{"", "", "", "policy", e.pol.Name()})
	table.Render()
}
