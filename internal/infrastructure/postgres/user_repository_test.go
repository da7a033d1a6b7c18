package postgres

import (
	"context"
	"testing"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByExternalID(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	id := uuid.New()
	created := time.Date(2026, time.September, 30, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM users\s+WHERE external_id = \$1`).
		WithArgs("tg:42").
		WillReturnRows(pgxmock.NewRows([]string{"id", "external_id", "tz", "created_at"}).
			AddRow(id, "tg:42", "Europe/Warsaw", created))

	user, err := repo.GetByExternalID(context.Background(), "tg:42")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Europe/Warsaw", user.Timezone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByExternalIDMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users`).
		WithArgs("tg:404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByExternalID(context.Background(), "tg:404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateConflict(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "tg:42", "UTC", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), newUser("tg:42", "UTC"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateTimezoneAndDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	id := uuid.New()

	mock.ExpectExec(`UPDATE users SET tz`).
		WithArgs(id, "Asia/Tokyo").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.UpdateTimezone(context.Background(), id, "Asia/Tokyo"))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func newUser(externalID, tz string) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Timezone:   tz,
		CreatedAt:  time.Now().UTC(),
	}
}
