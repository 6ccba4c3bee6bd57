package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresApplicationRepository implements ApplicationRepository using
// PostgreSQL.
type PostgresApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationRepository creates a new PostgreSQL-based
// application repository.
func NewPostgresApplicationRepository(pool *pgxpool.Pool) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		pool: pool,
	}
}

const applicationColumns = `id, citizen_id, status,
	is_free_of_infections, has_tattoos_or_piercings, has_recent_procedures,
	has_travel_to_risk_areas, has_risk_behavior, is_recently_pregnant,
	is_breastfeeding, has_drug_use, has_aids,
	rejection_reason, reviewed_by, reviewed_at, created_at`

func scanApplication(row pgx.Row) (DonationApplication, error) {
	var a DonationApplication
	err := row.Scan(&a.ID, &a.CitizenID, &a.Status,
		&a.IsFreeOfInfections, &a.HasTattoosOrPiercings, &a.HasRecentProcedures,
		&a.HasTravelToRiskAreas, &a.HasRiskBehavior, &a.IsRecentlyPregnant,
		&a.IsBreastfeeding, &a.HasDrugUse, &a.HasAids,
		&a.RejectionReason, &a.ReviewedBy, &a.ReviewedAt, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return DonationApplication{}, ErrApplicationNotFound
	}
	if err != nil {
		return DonationApplication{}, fmt.Errorf("scan application: %w", err)
	}
	return a, nil
}

func (r *PostgresApplicationRepository) CreateApplication(ctx context.Context, params CreateApplicationParams) (DonationApplication, error) {
	a := params.Answers
	row := r.pool.QueryRow(ctx, `
		INSERT INTO donation_applications (id, citizen_id, status,
			is_free_of_infections, has_tattoos_or_piercings, has_recent_procedures,
			has_travel_to_risk_areas, has_risk_behavior, is_recently_pregnant,
			is_breastfeeding, has_drug_use, has_aids)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+applicationColumns,
		uuid.New(), params.CitizenID,
		a.IsFreeOfInfections, a.HasTattoosOrPiercings, a.HasRecentProcedures,
		a.HasTravelToRiskAreas, a.HasRiskBehavior, a.IsRecentlyPregnant,
		a.IsBreastfeeding, a.HasDrugUse, a.HasAids)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) GetApplication(ctx context.Context, id uuid.UUID) (DonationApplication, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM donation_applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) FindApplicationsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]DonationApplication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+` FROM donation_applications
		WHERE citizen_id = $1 ORDER BY created_at`, citizenID)
	if err != nil {
		return nil, fmt.Errorf("find applications by citizen: %w", err)
	}
	return collectApplications(rows)
}

func (r *PostgresApplicationRepository) FindApplications(ctx context.Context) ([]DonationApplication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+` FROM donation_applications ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	return collectApplications(rows)
}

// DecideApplication performs the status transition as a single conditional
// update. Two concurrent decides on the same pending application race on
// the WHERE clause; exactly one sees a row.
func (r *PostgresApplicationRepository) DecideApplication(ctx context.Context, params DecideApplicationParams) (DonationApplication, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE donation_applications
		SET status = $2, rejection_reason = $3, reviewed_by = $4, reviewed_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+applicationColumns,
		params.ID, params.Status, params.RejectionReason, params.ReviewedBy)

	app, err := scanApplication(row)
	if errors.Is(err, ErrApplicationNotFound) {
		// Distinguish a missing row from an already-decided one.
		var exists bool
		checkErr := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM donation_applications WHERE id = $1)`,
			params.ID).Scan(&exists)
		if checkErr != nil {
			return DonationApplication{}, fmt.Errorf("decide application: %w", checkErr)
		}
		if exists {
			return DonationApplication{}, ErrInvalidTransition
		}
		return DonationApplication{}, ErrApplicationNotFound
	}
	return app, err
}

func collectApplications(rows pgx.Rows) ([]DonationApplication, error) {
	defer rows.Close()

	var result []DonationApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
