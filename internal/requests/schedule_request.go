package requests

import "os-scheduler/internal/core"

type ProcessSpec struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

type ScheduleRequest struct {
	Processes []ProcessSpec `json:"processes"`
	// TimeQuantum overrides the configured round robin quantum when positive.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// ToProcesses converts the request body into the core input list, preserving
// order (list position is the tie-break key for every algorithm).
func (r *ScheduleRequest) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Processes))
	for _, spec := range r.Processes {
		processes = append(processes, core.Process{
			ProcessId:   spec.ProcessId,
			ArrivalTime: spec.ArrivalTime,
			BurstTime:   spec.BurstTime,
		})
	}
	return processes
}
