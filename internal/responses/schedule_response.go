package responses

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	CompletionTime int     `json:"completion_time"`
	TurnAroundTime int     `json:"turn_around_time"`
	WaitingTime    int     `json:"waiting_time"`
	PenaltyIndex   float64 `json:"penalty_index"`
}
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AveragePenaltyIndex   float64           `json:"average_penalty_index"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}
