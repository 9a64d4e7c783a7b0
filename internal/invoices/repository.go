package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caregarden/billing/internal/platform/db"
)

// Repository defines data access for invoices and the per-year number
// sequence.
type Repository interface {
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, error)
	ExistsForMonth(ctx context.Context, customerID string, serviceMonth time.Time) (bool, error)
	NextSequence(ctx context.Context, year int) (int64, error)
	CreateBatch(ctx context.Context, invoices []Invoice) (int, error)
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `
	id, customer_id, invoice_number, service_month, invoice_date, due_date,
	customer_name, customer_address, customer_city_state_zip,
	monthly_rate, daily_rate, daily_rate_days, daily_rate_total,
	line_1_desc, line_1_amount, line_2_desc, line_2_amount,
	line_3_desc, line_3_amount,
	total_amount, status, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.InvoiceNumber, &inv.ServiceMonth, &inv.InvoiceDate, &inv.DueDate,
		&inv.CustomerName, &inv.CustomerAddress, &inv.CustomerCityStateZip,
		&inv.MonthlyRate, &inv.DailyRate, &inv.DailyRateDays, &inv.DailyRateTotal,
		&inv.Line1Desc, &inv.Line1Amount, &inv.Line2Desc, &inv.Line2Amount,
		&inv.Line3Desc, &inv.Line3Amount,
		&inv.TotalAmount, &inv.Status, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Invoice, error) {
	query := fmt.Sprintf("SELECT %s FROM invoices WHERE id = $1", invoiceColumns)
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *repository) List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(req.Status))
		argPos++
	}
	if req.ServiceMonth != nil {
		conditions = append(conditions, fmt.Sprintf("service_month = $%d", argPos))
		args = append(args, *req.ServiceMonth)
		argPos++
	}
	if req.CustomerID != "" {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", argPos))
		args = append(args, req.CustomerID)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			whereClause += " AND " + conditions[i]
		}
	}

	query := fmt.Sprintf("SELECT %s FROM invoices %s ORDER BY invoice_number DESC", invoiceColumns, whereClause)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, rows.Err()
}

func (r *repository) ExistsForMonth(ctx context.Context, customerID string, serviceMonth time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM invoices WHERE customer_id = $1 AND service_month = $2)",
		customerID, serviceMonth,
	).Scan(&exists)
	return exists, err
}

// NextSequence atomically hands out the next invoice number for the year.
// The upsert is a single statement, so concurrent callers cannot observe the
// same value.
func (r *repository) NextSequence(ctx context.Context, year int) (int64, error) {
	var next int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invoice_number_sequence (year, last_number)
		VALUES ($1, 1)
		ON CONFLICT (year)
		DO UPDATE SET last_number = invoice_number_sequence.last_number + 1
		RETURNING last_number`,
		year,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next invoice sequence: %w", err)
	}
	return next, nil
}

// CreateBatch inserts the whole batch in one transaction. The unique
// constraint on (customer_id, service_month) plus ON CONFLICT DO NOTHING
// closes the check-then-insert race: a row that slipped in between the
// duplicate check and this insert is skipped, not an error. Returns the
// number of rows actually inserted.
func (r *repository) CreateBatch(ctx context.Context, invoices []Invoice) (int, error) {
	if len(invoices) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO invoices (
			id, customer_id, invoice_number, service_month, invoice_date, due_date,
			customer_name, customer_address, customer_city_state_zip,
			monthly_rate, daily_rate, daily_rate_days, daily_rate_total,
			line_1_desc, line_1_amount, line_2_desc, line_2_amount,
			line_3_desc, line_3_amount,
			total_amount, status, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, NOW(), NOW()
		)
		ON CONFLICT (customer_id, service_month) DO NOTHING`

	created := 0
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, inv := range invoices {
			id := inv.ID
			if id == "" {
				id = uuid.NewString()
			}
			tag, err := tx.Exec(ctx, query,
				id, inv.CustomerID, inv.InvoiceNumber, inv.ServiceMonth, inv.InvoiceDate, inv.DueDate,
				inv.CustomerName, inv.CustomerAddress, inv.CustomerCityStateZip,
				inv.MonthlyRate, inv.DailyRate, inv.DailyRateDays, inv.DailyRateTotal,
				inv.Line1Desc, inv.Line1Amount, inv.Line2Desc, inv.Line2Amount,
				inv.Line3Desc, inv.Line3Amount,
				inv.TotalAmount, string(inv.Status), inv.Notes,
			)
			if err != nil {
				return fmt.Errorf("insert invoice %s: %w", inv.InvoiceNumber, err)
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2",
		string(status), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
