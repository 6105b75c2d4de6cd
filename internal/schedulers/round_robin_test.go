package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestRoundRobin_InterleavesSlices(t *testing.T) {
	// A runs [0,2]; B arrives during the slice and queues ahead of the
	// preempted A; B [2,4]; A [4,6]; B [6,7] done; A [7,8] done
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 5), proc("B", 1, 3)}, 2)

	require.Equal(t, 8, byId(t, results, "A").CompletionTime)
	require.Equal(t, 7, byId(t, results, "B").CompletionTime)
	requireMetricIdentities(t, results)
}

func TestRoundRobin_QuantumLargerThanBurst(t *testing.T) {
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 3)}, 10)

	a := byId(t, results, "A")
	require.Equal(t, 3, a.CompletionTime)
	require.Equal(t, 0, a.WaitingTime)
	require.Equal(t, 1.0, a.PenaltyIndex)
}

func TestRoundRobin_BusyWaitsUntilFirstArrival(t *testing.T) {
	// unlike FIFO/LIFO the clock advances tick by tick, landing exactly on
	// the arrival
	results := ScheduleRoundRobin([]core.Process{proc("A", 4, 2)}, 2)

	a := byId(t, results, "A")
	require.Equal(t, 6, a.CompletionTime)
	require.Equal(t, 0, a.WaitingTime)
}

func TestRoundRobin_SimultaneousArrivalKeepsListOrder(t *testing.T) {
	// both arrive at 0: A admitted first by list position, slices alternate
	// A [0,2] B [2,4] A [4,6] B [6,8]
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 4), proc("B", 0, 4)}, 2)

	require.Equal(t, 6, byId(t, results, "A").CompletionTime)
	require.Equal(t, 8, byId(t, results, "B").CompletionTime)
}

func TestRoundRobin_QuantumOneFairShare(t *testing.T) {
	// strict alternation: A [0,1] B [1,2] A [2,3] B [3,4] A [4,5]
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 3), proc("B", 0, 2)}, 1)

	require.Equal(t, 5, byId(t, results, "A").CompletionTime)
	require.Equal(t, 4, byId(t, results, "B").CompletionTime)
	requireMetricIdentities(t, results)
}

func TestRoundRobin_ArrivalGapIdles(t *testing.T) {
	// A finishes at 2, B not due until 5: three idle ticks then B [5,8]
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 2), proc("B", 5, 3)}, 4)

	require.Equal(t, 2, byId(t, results, "A").CompletionTime)
	require.Equal(t, 8, byId(t, results, "B").CompletionTime)
	require.Equal(t, 0, byId(t, results, "B").WaitingTime)
}

func TestRoundRobin_Deterministic(t *testing.T) {
	input := []core.Process{proc("A", 0, 5), proc("B", 1, 3), proc("C", 9, 2)}
	require.Equal(t, ScheduleRoundRobin(input, 2), ScheduleRoundRobin(input, 2))
}

func TestRoundRobin_ConservationOfWork(t *testing.T) {
	results := ScheduleRoundRobin([]core.Process{proc("A", 0, 5), proc("B", 1, 3)}, 2)

	finalClock := 0
	burstSum := 0
	for _, process := range results {
		if process.CompletionTime > finalClock {
			finalClock = process.CompletionTime
		}
		burstSum += process.BurstTime
	}
	// no idle time in this workload
	require.Equal(t, finalClock, burstSum)
}
