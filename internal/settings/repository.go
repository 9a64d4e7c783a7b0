package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the singleton facility settings row.
type Repository interface {
	Get(ctx context.Context) (*FacilitySettings, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context) (*FacilitySettings, error) {
	var s FacilitySettings
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, address, city_state_zip, phone, fax, email, website,
		       thank_you_note, created_at, updated_at
		FROM facility_settings
		LIMIT 1`,
	).Scan(
		&s.ID, &s.Name, &s.Address, &s.CityStateZip, &s.Phone, &s.Fax,
		&s.Email, &s.Website, &s.ThankYouNote, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

var updatableColumns = []string{
	"name", "address", "city_state_zip", "phone", "fax", "email", "website",
	"thank_you_note",
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query := "UPDATE facility_settings SET updated_at = NOW()"
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
