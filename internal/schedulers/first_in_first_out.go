package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleFirstInFirstOut simulates non-preemptive execution in input-list
// order: the first pending process that has already arrived runs to
// completion. Ties between arrived processes are broken by list position, not
// by arrival time.
func ScheduleFirstInFirstOut(processes []core.Process) []core.Process {
	results := core.Clone(processes)
	clock := 0
	completed := 0

	for completed < len(results) {
		var current *core.Process
		for i := range results {
			if results[i].State == core.StatePending && results[i].ArrivalTime <= clock {
				current = &results[i]
				break
			}
		}

		if current == nil {
			// nothing has arrived: jump the clock to the next arrival
			clock = nextArrivalTime(results)
			continue
		}

		current.MarkFinished(clock + current.BurstTime)
		clock = current.CompletionTime
		completed++
	}

	return results
}

// nextArrivalTime returns the minimum arrival time among pending processes.
// Callers only invoke it while at least one process is pending.
func nextArrivalTime(processes []core.Process) int {
	next := -1
	for _, process := range processes {
		if process.State != core.StatePending {
			continue
		}
		if next == -1 || process.ArrivalTime < next {
			next = process.ArrivalTime
		}
	}
	return next
}
