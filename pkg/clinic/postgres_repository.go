package clinic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresClinicRepository implements ClinicRepository using PostgreSQL.
// Opening hours are stored as a jsonb column and scanned directly into
// OpeningHours.
type PostgresClinicRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresClinicRepository creates a new PostgreSQL-based clinic
// repository.
func NewPostgresClinicRepository(pool *pgxpool.Pool) *PostgresClinicRepository {
	return &PostgresClinicRepository{
		pool: pool,
	}
}

const clinicColumns = `id, name, address, area, phone, email, opening_hours, created_at`

func scanClinic(row pgx.Row) (Clinic, error) {
	var c Clinic
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Area, &c.Phone, &c.Email,
		&c.OpeningHours, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Clinic{}, ErrClinicNotFound
	}
	if err != nil {
		return Clinic{}, fmt.Errorf("scan clinic: %w", err)
	}
	return c, nil
}

func (r *PostgresClinicRepository) GetClinic(ctx context.Context, id uuid.UUID) (Clinic, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clinicColumns+` FROM clinics WHERE id = $1`, id)
	return scanClinic(row)
}

func (r *PostgresClinicRepository) FindClinics(ctx context.Context) ([]Clinic, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clinicColumns+` FROM clinics ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("find clinics: %w", err)
	}
	defer rows.Close()

	var result []Clinic
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
