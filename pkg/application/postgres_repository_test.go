package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithInitScripts(filepath.Join("../../migrations", "donation_db.sql")),
		postgres.WithDatabase("donation_db"),
		postgres.WithUsername("donation"),
		postgres.WithPassword("pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	poolConfig, err := pgxpool.ParseConfig(connString)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

func seedProfileRow(t *testing.T, pool *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO profiles (id, email, first_name, last_name, role)
		VALUES ($1, $2, 'Test', 'User', $3)
	`, id, email, role)
	require.NoError(t, err)
	return id
}

func TestPostgresApplicationRepository(t *testing.T) {
	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewPostgresApplicationRepository(pool)

	citizenID := seedProfileRow(t, pool, "maria@example.com", "citizen")
	secretaryID := seedProfileRow(t, pool, "eleni@example.com", "secretary")

	t.Run("CreateAndGet", func(t *testing.T) {
		app, err := repo.CreateApplication(ctx, CreateApplicationParams{
			CitizenID: citizenID,
			Answers:   EligibilityAnswers{IsFreeOfInfections: true},
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, app.Status)
		assert.True(t, app.IsFreeOfInfections)
		assert.Nil(t, app.ReviewedBy)

		got, err := repo.GetApplication(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, app.ID, got.ID)
		assert.Equal(t, citizenID, got.CitizenID)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := repo.GetApplication(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("DecideApprove", func(t *testing.T) {
		app, err := repo.CreateApplication(ctx, CreateApplicationParams{CitizenID: citizenID})
		require.NoError(t, err)

		decided, err := repo.DecideApplication(ctx, DecideApplicationParams{
			ID:         app.ID,
			Status:     StatusApproved,
			ReviewedBy: secretaryID,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, decided.Status)
		require.NotNil(t, decided.ReviewedBy)
		assert.Equal(t, secretaryID, *decided.ReviewedBy)
		assert.NotNil(t, decided.ReviewedAt)
	})

	t.Run("DecideRejectStoresReason", func(t *testing.T) {
		app, err := repo.CreateApplication(ctx, CreateApplicationParams{CitizenID: citizenID})
		require.NoError(t, err)

		reason := "Recent travel to risk area"
		decided, err := repo.DecideApplication(ctx, DecideApplicationParams{
			ID:              app.ID,
			Status:          StatusRejected,
			ReviewedBy:      secretaryID,
			RejectionReason: &reason,
		})
		require.NoError(t, err)
		require.NotNil(t, decided.RejectionReason)
		assert.Equal(t, reason, *decided.RejectionReason)
	})

	t.Run("DecideAlreadyDecided", func(t *testing.T) {
		app, err := repo.CreateApplication(ctx, CreateApplicationParams{CitizenID: citizenID})
		require.NoError(t, err)

		_, err = repo.DecideApplication(ctx, DecideApplicationParams{
			ID: app.ID, Status: StatusApproved, ReviewedBy: secretaryID,
		})
		require.NoError(t, err)

		_, err = repo.DecideApplication(ctx, DecideApplicationParams{
			ID: app.ID, Status: StatusRejected, ReviewedBy: secretaryID,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)

		stored, err := repo.GetApplication(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, stored.Status)
	})

	t.Run("DecideMissingApplication", func(t *testing.T) {
		_, err := repo.DecideApplication(ctx, DecideApplicationParams{
			ID: uuid.New(), Status: StatusApproved, ReviewedBy: secretaryID,
		})
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("FindByCitizen", func(t *testing.T) {
		other := seedProfileRow(t, pool, "other@example.com", "citizen")
		_, err := repo.CreateApplication(ctx, CreateApplicationParams{CitizenID: other})
		require.NoError(t, err)

		apps, err := repo.FindApplicationsByCitizen(ctx, other)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, other, apps[0].CitizenID)
	})
}
