package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func proc(id string, arrival, burst int) core.Process {
	return core.Process{ProcessId: id, ArrivalTime: arrival, BurstTime: burst}
}

func byId(t *testing.T, results []core.Process, id string) core.Process {
	t.Helper()
	for _, process := range results {
		if process.ProcessId == id {
			return process
		}
	}
	t.Fatalf("process %s not in results", id)
	return core.Process{}
}

func requireMetricIdentities(t *testing.T, results []core.Process) {
	t.Helper()
	for _, process := range results {
		require.Equal(t, core.StateFinished, process.State, "process %s", process.ProcessId)
		require.Equal(t, process.CompletionTime-process.ArrivalTime, process.TurnAroundTime, "process %s", process.ProcessId)
		require.Equal(t, process.TurnAroundTime-process.BurstTime, process.WaitingTime, "process %s", process.ProcessId)
		require.GreaterOrEqual(t, process.WaitingTime, 0, "process %s", process.ProcessId)
		require.GreaterOrEqual(t, process.CompletionTime, process.ArrivalTime+process.BurstTime, "process %s", process.ProcessId)
	}
}

func TestFifo_SingleProcess(t *testing.T) {
	results := ScheduleFirstInFirstOut([]core.Process{proc("A", 0, 5)})

	a := byId(t, results, "A")
	require.Equal(t, 5, a.CompletionTime)
	require.Equal(t, 5, a.TurnAroundTime)
	require.Equal(t, 0, a.WaitingTime)
	require.Equal(t, 1.0, a.PenaltyIndex)
}

func TestFifo_NoOverlapIdleSkip(t *testing.T) {
	results := ScheduleFirstInFirstOut([]core.Process{proc("A", 0, 3), proc("B", 5, 2)})

	require.Equal(t, 3, byId(t, results, "A").CompletionTime)
	require.Equal(t, 0, byId(t, results, "A").WaitingTime)
	// clock must jump exactly to B's arrival, not beyond
	require.Equal(t, 7, byId(t, results, "B").CompletionTime)
	require.Equal(t, 0, byId(t, results, "B").WaitingTime)
	requireMetricIdentities(t, results)
}

func TestFifo_ListOrderBeatsArrivalOrder(t *testing.T) {
	// after X finishes at 3 both A and B have arrived; A wins by list
	// position even though B arrived earlier
	results := ScheduleFirstInFirstOut([]core.Process{
		proc("X", 0, 3),
		proc("A", 2, 2),
		proc("B", 1, 2),
	})

	require.Equal(t, 3, byId(t, results, "X").CompletionTime)
	require.Equal(t, 5, byId(t, results, "A").CompletionTime)
	require.Equal(t, 7, byId(t, results, "B").CompletionTime)
	requireMetricIdentities(t, results)
}

func TestFifo_LateArrivalNotSelectedEarly(t *testing.T) {
	results := ScheduleFirstInFirstOut([]core.Process{proc("A", 0, 2), proc("B", 10, 1)})

	b := byId(t, results, "B")
	require.Equal(t, 11, b.CompletionTime)
	require.Equal(t, 0, b.WaitingTime)
}

func TestFifo_Deterministic(t *testing.T) {
	input := []core.Process{proc("A", 0, 4), proc("B", 2, 3), proc("C", 2, 1)}
	first := ScheduleFirstInFirstOut(input)
	second := ScheduleFirstInFirstOut(input)
	require.Equal(t, first, second)
}

func TestFifo_ConservationOfWork(t *testing.T) {
	results := ScheduleFirstInFirstOut([]core.Process{proc("A", 0, 2), proc("B", 10, 1), proc("C", 10, 4)})

	finalClock := 0
	burstSum := 0
	for _, process := range results {
		if process.CompletionTime > finalClock {
			finalClock = process.CompletionTime
		}
		burstSum += process.BurstTime
	}
	// only idle window is [2,10)
	require.Equal(t, finalClock-8, burstSum)
	requireMetricIdentities(t, results)
}

func TestFifo_InputUntouched(t *testing.T) {
	input := []core.Process{proc("A", 0, 5)}
	_ = ScheduleFirstInFirstOut(input)
	require.Equal(t, core.StatePending, input[0].State)
	require.Equal(t, 0, input[0].CompletionTime)
}

func TestFifo_EmptyInput(t *testing.T) {
	require.Empty(t, ScheduleFirstInFirstOut(nil))
}
