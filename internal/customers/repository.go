package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("customers: not found")

// Repository defines data access for resident profiles.
type Repository interface {
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, req ListCustomersRequest) ([]Customer, error)
	ListActiveByIDs(ctx context.Context, ids []string) ([]Customer, error)
	Create(ctx context.Context, customer Customer) (*Customer, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const customerColumns = `
	id, name, first_name, middle_name, last_name,
	responsible_first_name, responsible_middle_name, responsible_last_name,
	address, city_state_zip, email, phone, notes, is_active,
	monthly_rate, daily_rate, daily_rate_days,
	additional_line_1_desc, additional_line_1_amount,
	additional_line_2_desc, additional_line_2_amount,
	additional_line_3_desc, additional_line_3_amount,
	created_at, updated_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.FirstName, &c.MiddleName, &c.LastName,
		&c.ResponsibleFirstName, &c.ResponsibleMiddleName, &c.ResponsibleLastName,
		&c.Address, &c.CityStateZip, &c.Email, &c.Phone, &c.Notes, &c.IsActive,
		&c.MonthlyRate, &c.DailyRate, &c.DailyRateDays,
		&c.Line1Desc, &c.Line1Amount,
		&c.Line2Desc, &c.Line2Amount,
		&c.Line3Desc, &c.Line3Amount,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Customer, error) {
	query := fmt.Sprintf("SELECT %s FROM customers WHERE id = $1", customerColumns)
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *repository) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	switch req.Filter {
	case FilterActive:
		conditions = append(conditions, "is_active = TRUE")
	case FilterInactive:
		conditions = append(conditions, "is_active = FALSE")
	}

	if req.Search != nil && *req.Search != "" {
		pattern := "%" + *req.Search + "%"
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, pattern)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			whereClause += " AND " + conditions[i]
		}
	}

	query := fmt.Sprintf("SELECT %s FROM customers %s ORDER BY name", customerColumns, whereClause)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *repository) ListActiveByIDs(ctx context.Context, ids []string) ([]Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM customers WHERE id = ANY($1) AND is_active = TRUE ORDER BY name", customerColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func collectCustomers(rows pgx.Rows) ([]Customer, error) {
	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}

	query := `
		INSERT INTO customers (
			id, name, first_name, middle_name, last_name,
			responsible_first_name, responsible_middle_name, responsible_last_name,
			address, city_state_zip, email, phone, notes, is_active,
			monthly_rate, daily_rate, daily_rate_days,
			additional_line_1_desc, additional_line_1_amount,
			additional_line_2_desc, additional_line_2_amount,
			additional_line_3_desc, additional_line_3_amount,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, NOW(), NOW()
		)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		customer.ID, customer.Name, customer.FirstName, customer.MiddleName, customer.LastName,
		customer.ResponsibleFirstName, customer.ResponsibleMiddleName, customer.ResponsibleLastName,
		customer.Address, customer.CityStateZip, customer.Email, customer.Phone, customer.Notes, customer.IsActive,
		customer.MonthlyRate, customer.DailyRate, customer.DailyRateDays,
		customer.Line1Desc, customer.Line1Amount,
		customer.Line2Desc, customer.Line2Amount,
		customer.Line3Desc, customer.Line3Amount,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

var updatableColumns = []string{
	"name", "first_name", "middle_name", "last_name",
	"responsible_first_name", "responsible_middle_name", "responsible_last_name",
	"address", "city_state_zip", "email", "phone", "notes", "is_active",
	"monthly_rate", "daily_rate", "daily_rate_days",
	"additional_line_1_desc", "additional_line_1_amount",
	"additional_line_2_desc", "additional_line_2_amount",
	"additional_line_3_desc", "additional_line_3_amount",
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query := "UPDATE customers SET updated_at = NOW()"
	var args []interface{}
	argPos := 1

	for _, col := range updatableColumns {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}

	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the customer row. Invoices keep their denormalized snapshot
// fields and are left untouched.
func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
