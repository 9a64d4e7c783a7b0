package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/caregarden/billing/internal/dashboard"
)

// DashboardWarmupJob pre-populates the dashboard summary cache so the first
// request of the day does not pay the aggregation cost.
type DashboardWarmupJob struct {
	Dashboard *dashboard.Service
	Logger    *slog.Logger
	clock     func() time.Time
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(dashboardSvc *dashboard.Service, logger *slog.Logger) *DashboardWarmupJob {
	return &DashboardWarmupJob{
		Dashboard: dashboardSvc,
		Logger:    logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Dashboard == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	started := j.clock()
	if err := j.Dashboard.Warm(ctx, started); err != nil {
		j.Logger.Error("dashboard warmup failed", slog.Any("error", err))
		return err
	}
	j.Logger.Info("dashboard warmup complete",
		slog.String("reason", payload.Reason),
		slog.Duration("took", j.clock().Sub(started)),
	)
	return nil
}
