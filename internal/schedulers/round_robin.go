package schedulers

import (
	"os-scheduler/internal/core"
)

// roundRobinState bundles the mutable simulation state so repeated runs stay
// independent: the virtual clock, the cyclic ready queue of process indices,
// and the admission cursor into the input list.
type roundRobinState struct {
	results []core.Process
	clock   int
	queue   []int
	cursor  int
}

// admit appends every not-yet-admitted process whose arrival time has been
// reached, in input-list order. List order, not arrival order, decides who
// queues first on simultaneous arrivals.
func (s *roundRobinState) admit() {
	for s.cursor < len(s.results) && s.results[s.cursor].ArrivalTime <= s.clock {
		if s.results[s.cursor].RemainingTime > 0 {
			s.queue = append(s.queue, s.cursor)
		}
		s.cursor++
	}
}

// ScheduleRoundRobin simulates preemptive execution with a fixed time
// quantum. The caller must pass timeQuantum > 0; the simulation does not
// check and will not terminate otherwise.
//
// When the ready queue is empty the clock advances a single tick rather than
// jumping to the next arrival: interleaving depends on exact arrival ticks,
// so round robin cannot skip ahead the way FIFO/LIFO do. Processes arriving
// while a slice runs are admitted before the preempted process re-enters the
// queue, so they get their turn first.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) []core.Process {
	state := &roundRobinState{results: core.Clone(processes)}
	completed := 0

	for completed < len(state.results) {
		state.admit()

		if len(state.queue) == 0 {
			state.clock++
			continue
		}

		index := state.queue[0]
		state.queue = state.queue[1:]
		current := &state.results[index]

		slice := timeQuantum
		if current.RemainingTime < slice {
			slice = current.RemainingTime
		}
		current.RemainingTime -= slice
		state.clock += slice

		// arrivals during the slice queue ahead of the preempted process
		state.admit()

		if current.RemainingTime == 0 {
			current.MarkFinished(state.clock)
			completed++
		} else {
			state.queue = append(state.queue, index)
		}
	}

	return state.results
}
