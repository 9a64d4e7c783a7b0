package jobs

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/caregarden/billing/internal/dashboard"
)

type stubDashboardRepo struct {
	active int
	loads  int
}

func (r *stubDashboardRepo) CountActiveCustomers(ctx context.Context) (int, error) {
	r.loads++
	return r.active, nil
}

func (r *stubDashboardRepo) CountInvoicesByStatus(ctx context.Context, serviceMonth time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func (r *stubDashboardRepo) OutstandingTotal(ctx context.Context) (float64, error) {
	return 0, nil
}

func newWarmupJob(t *testing.T, repo dashboard.Repository) *DashboardWarmupJob {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	svc := dashboard.NewService(repo, dashboard.NewCache(client, time.Minute))
	return NewDashboardWarmupJob(svc, slog.Default())
}

func TestDashboardWarmupHandle(t *testing.T) {
	repo := &stubDashboardRepo{active: 3}
	job := newWarmupJob(t, repo)

	task, err := NewDashboardWarmupTask(DashboardWarmupPayload{Reason: "scheduled"})
	require.NoError(t, err)
	require.Equal(t, TaskDashboardWarmup, task.Type())

	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, 1, repo.loads)
}

func TestDashboardWarmupBadPayloadSkipsRetry(t *testing.T) {
	job := newWarmupJob(t, &stubDashboardRepo{})

	task := asynq.NewTask(TaskDashboardWarmup, []byte("{not json"))
	err := job.Handle(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDashboardWarmupUnconfigured(t *testing.T) {
	var job *DashboardWarmupJob
	task, err := NewDashboardWarmupTask(DashboardWarmupPayload{})
	require.NoError(t, err)
	require.Error(t, job.Handle(context.Background(), task))
}
