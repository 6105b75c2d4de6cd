package core

// State tells whether a process still waits for cpu time. An explicit enum is
// used instead of treating a zero completion time as "not finished": a process
// arriving at 0 with the clock at 0 could legitimately complete at 0 under a
// degenerate workload, and a zero-value sentinel would misread it as pending.
type State int

const (
	StatePending State = iota
	StateFinished
)

// Process is one simulated process. ArrivalTime and BurstTime come from the
// caller; everything else is filled in by a scheduler run.
type Process struct {
	ProcessId      string
	ArrivalTime    int
	BurstTime      int
	RemainingTime  int // round robin bookkeeping, decremented per slice
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
	PenaltyIndex   float64 // BurstTime / TurnAroundTime, 0 when undefined
	State          State
}

// Clone returns a fresh copy of the input list with all computed attributes
// reset. Every scheduler run works on its own clone so runs never share
// mutable state.
func Clone(processes []Process) []Process {
	cloned := make([]Process, len(processes))
	for i, process := range processes {
		cloned[i] = Process{
			ProcessId:     process.ProcessId,
			ArrivalTime:   process.ArrivalTime,
			BurstTime:     process.BurstTime,
			RemainingTime: process.BurstTime,
			State:         StatePending,
		}
	}
	return cloned
}

// ComputeMetrics derives the output metrics from a completion time. The
// penalty index is left at 0 when turnaround is 0; with burst times required
// to be positive that branch is unreachable once a process has completed, but
// callers treating 0-turnaround as "undefined" stay safe either way.
func ComputeMetrics(arrivalTime, burstTime, completionTime int) (turnAroundTime, waitingTime int, penaltyIndex float64) {
	turnAroundTime = completionTime - arrivalTime
	waitingTime = turnAroundTime - burstTime
	if turnAroundTime != 0 {
		penaltyIndex = float64(burstTime) / float64(turnAroundTime)
	}
	return
}

// MarkFinished records the completion time, derives the metrics and flips the
// process to StateFinished. After this call the record is never mutated again.
func (p *Process) MarkFinished(completionTime int) {
	p.CompletionTime = completionTime
	p.TurnAroundTime, p.WaitingTime, p.PenaltyIndex = ComputeMetrics(p.ArrivalTime, p.BurstTime, completionTime)
	p.RemainingTime = 0
	p.State = StateFinished
}
