package util

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
)

var (
	ErrNoProcesses    = errors.New("no processes to schedule")
	ErrInvalidProcess = errors.New("invalid process")
	ErrInvalidQuantum = errors.New("time quantum must be positive")
)

// CalculateAverage computes the mean turnaround, waiting time and penalty
// index over a finished process list. The penalty index average only counts
// processes with a non-zero turnaround, since the index is undefined there.
func CalculateAverage(processes []core.Process) (averageTurnAroundTime, averageWaitingTime, averagePenaltyIndex float64) {
	var turnAroundTimeSum float64
	var waitingTimeSum float64
	var penaltyIndexSum float64
	var penaltyIndexCount int

	for _, process := range processes {
		turnAroundTimeSum += float64(process.TurnAroundTime)
		waitingTimeSum += float64(process.WaitingTime)
		if process.TurnAroundTime != 0 {
			penaltyIndexSum += process.PenaltyIndex
			penaltyIndexCount++
		}
	}

	processCount := float64(len(processes))
	if processCount > 0 {
		averageTurnAroundTime = turnAroundTimeSum / processCount
		averageWaitingTime = waitingTimeSum / processCount
	}
	if penaltyIndexCount > 0 {
		averagePenaltyIndex = penaltyIndexSum / float64(penaltyIndexCount)
	}
	return
}

// ValidateProcesses enforces the simulation preconditions the schedulers
// themselves never check: at least one process, non-negative arrival times,
// positive burst times and unique ids.
func ValidateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[string]struct{}, len(processes))
	for _, process := range processes {
		if process.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidProcess, process.ProcessId, process.ArrivalTime)
		}
		if process.BurstTime <= 0 {
			return fmt.Errorf("%w: %s has non-positive burst time %d", ErrInvalidProcess, process.ProcessId, process.BurstTime)
		}
		if _, ok := seen[process.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidProcess, process.ProcessId)
		}
		seen[process.ProcessId] = struct{}{}
	}
	return nil
}

// ValidateQuantum rejects quanta the round robin simulation cannot terminate
// on.
func ValidateQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	return nil
}
