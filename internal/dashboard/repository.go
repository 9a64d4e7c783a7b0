package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the aggregate figures shown on the dashboard.
type Repository interface {
	CountActiveCustomers(ctx context.Context) (int, error)
	CountInvoicesByStatus(ctx context.Context, serviceMonth time.Time) (map[string]int, error)
	OutstandingTotal(ctx context.Context) (float64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) CountActiveCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers WHERE is_active = TRUE").Scan(&count)
	return count, err
}

func (r *repository) CountInvoicesByStatus(ctx context.Context, serviceMonth time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT status, COUNT(*) FROM invoices WHERE service_month = $1 GROUP BY status",
		serviceMonth,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *repository) OutstandingTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(total_amount), 0) FROM invoices WHERE status <> 'paid'",
	).Scan(&total)
	return total, err
}
