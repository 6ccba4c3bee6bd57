package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAppointmentRepository implements AppointmentRepository using
// PostgreSQL. Slot conflicts are enforced by the partial unique index on
// (clinic_id, appointment_date, appointment_time) for non-cancelled rows.
type PostgresAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAppointmentRepository creates a new PostgreSQL-based
// appointment repository.
func NewPostgresAppointmentRepository(pool *pgxpool.Pool) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{
		pool: pool,
	}
}

const appointmentColumns = `id, application_id, citizen_id, clinic_id,
	appointment_date, appointment_time, status, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.ApplicationID, &a.CitizenID, &a.ClinicID,
		&a.Date, &a.Time, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Appointment{}, ErrAppointmentNotFound
	}
	if err != nil {
		return Appointment{}, fmt.Errorf("scan appointment: %w", err)
	}
	return a, nil
}

func (r *PostgresAppointmentRepository) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, application_id, citizen_id, clinic_id,
			appointment_date, appointment_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, 'scheduled', $7)
		RETURNING `+appointmentColumns,
		uuid.New(), params.ApplicationID, params.CitizenID, params.ClinicID,
		params.Date, params.Time, params.Notes)

	appt, err := scanAppointment(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return Appointment{}, ErrSlotUnavailable
	}
	return appt, err
}

func (r *PostgresAppointmentRepository) GetAppointment(ctx context.Context, id uuid.UUID) (Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *PostgresAppointmentRepository) FindAppointmentsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+` FROM appointments
		WHERE citizen_id = $1 ORDER BY created_at`, citizenID)
	if err != nil {
		return nil, fmt.Errorf("find appointments by citizen: %w", err)
	}
	return collectAppointments(rows)
}

func (r *PostgresAppointmentRepository) FindAppointments(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	return collectAppointments(rows)
}

func (r *PostgresAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE appointments SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'scheduled'
		RETURNING `+appointmentColumns,
		id, status)

	appt, err := scanAppointment(row)
	if errors.Is(err, ErrAppointmentNotFound) {
		var exists bool
		checkErr := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists)
		if checkErr != nil {
			return Appointment{}, fmt.Errorf("update appointment status: %w", checkErr)
		}
		if exists {
			return Appointment{}, ErrInvalidStatusChange
		}
		return Appointment{}, ErrAppointmentNotFound
	}
	return appt, err
}

func collectAppointments(rows pgx.Rows) ([]Appointment, error) {
	defer rows.Close()

	var result []Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, appt)
	}
	return result, rows.Err()
}
