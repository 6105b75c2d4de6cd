package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(algorithm string, results []core.Process) responses.ScheduleResponse {
	averageTurnAroundTime, averageWaitingTime, averagePenaltyIndex := util.CalculateAverage(results)

	totalTime := 0
	burstSum := 0
	for _, process := range results {
		if process.CompletionTime > totalTime {
			totalTime = process.CompletionTime
		}
		burstSum += process.BurstTime
	}
	idleTime := totalTime - burstSum

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(results)) / float64(totalTime)
	}

	details := make([]responses.ProcessResponse, 0, len(results))
	for _, process := range results {
		details = append(details, responses.ProcessResponse{
			ProcessId:      process.ProcessId,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
			CompletionTime: process.CompletionTime,
			TurnAroundTime: process.TurnAroundTime,
			WaitingTime:    process.WaitingTime,
			PenaltyIndex:   process.PenaltyIndex,
		})
	}
	// processes finish in schedule order; report them by id
	sort.Slice(details, func(i, j int) bool {
		return details[i].ProcessId < details[j].ProcessId
	})

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageWaitingTime:    averageWaitingTime,
		AveragePenaltyIndex:   averagePenaltyIndex,
		Details:               details,
	}
}

// RunFirstInFirstOut executes the FIFO simulation and wraps the results for
// the api layer.
func RunFirstInFirstOut(processes []core.Process) responses.ScheduleResponse {
	return generateResponse("first_in_first_out", ScheduleFirstInFirstOut(processes))
}

// RunLastInFirstOut executes the LIFO simulation and wraps the results.
func RunLastInFirstOut(processes []core.Process) responses.ScheduleResponse {
	return generateResponse("last_in_first_out", ScheduleLastInFirstOut(processes))
}

// RunRoundRobin executes the round robin simulation and wraps the results.
func RunRoundRobin(processes []core.Process, timeQuantum int) responses.ScheduleResponse {
	return generateResponse("round_robin", ScheduleRoundRobin(processes, timeQuantum))
}
