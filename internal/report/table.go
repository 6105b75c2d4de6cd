package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

// Render writes one algorithm's results as a console table, rows sorted by
// process id, with the column averages underneath. The penalty cell reads
// N/A when the index is undefined (turnaround of zero).
func Render(w io.Writer, title string, results []core.Process) {
	sorted := make([]core.Process, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProcessId < sorted[j].ProcessId
	})

	fmt.Fprintf(w, "\n%s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Penalty"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	for _, process := range sorted {
		penalty := "N/A"
		if process.TurnAroundTime != 0 {
			penalty = fmt.Sprintf("%.4f", process.PenaltyIndex)
		}
		table.Append([]string{
			process.ProcessId,
			strconv.Itoa(process.ArrivalTime),
			strconv.Itoa(process.BurstTime),
			strconv.Itoa(process.CompletionTime),
			strconv.Itoa(process.TurnAroundTime),
			strconv.Itoa(process.WaitingTime),
			penalty,
		})
	}
	table.Render()

	averageTurnAroundTime, averageWaitingTime, averagePenaltyIndex := util.CalculateAverage(results)
	fmt.Fprintf(w, "Averages: turnaround=%.2f | waiting=%.2f | penalty=%.4f\n",
		averageTurnAroundTime, averageWaitingTime, averagePenaltyIndex)
}
