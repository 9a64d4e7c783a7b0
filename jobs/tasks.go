package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue every task runs on.
	QueueDefault = "default"

	// TaskDashboardWarmup recomputes the cached dashboard summary.
	TaskDashboardWarmup = "dashboard:warmup"
)

// DashboardWarmupPayload carries options for a warmup run.
type DashboardWarmupPayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewDashboardWarmupTask builds a warmup task.
func NewDashboardWarmupTask(payload DashboardWarmupPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, raw), nil
}
