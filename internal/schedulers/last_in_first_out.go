package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleLastInFirstOut is the mirror of ScheduleFirstInFirstOut: among the
// pending processes that have arrived, the one latest in the input list runs
// next, to completion. The idle-skip rule is the same.
func ScheduleLastInFirstOut(processes []core.Process) []core.Process {
	results := core.Clone(processes)
	clock := 0
	completed := 0

	for completed < len(results) {
		var current *core.Process
		for i := len(results) - 1; i >= 0; i-- {
			if results[i].State == core.StatePending && results[i].ArrivalTime <= clock {
				current = &results[i]
				break
			}
		}

		if current == nil {
			clock = nextArrivalTime(results)
			continue
		}

		current.MarkFinished(clock + current.BurstTime)
		clock = current.CompletionTime
		completed++
	}

	return results
}
