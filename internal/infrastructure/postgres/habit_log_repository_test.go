package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logRowColumns = []string{"id", "habit_id", "log_date", "status", "created_at"}

// Warsaw, 2026-10-25: the 25 hour fall-back day.
var (
	dayStart = time.Date(2026, time.October, 24, 22, 0, 0, 0, time.UTC)
	dayEnd   = time.Date(2026, time.October, 25, 23, 0, 0, 0, time.UTC)
)

func TestHabitLogRepository_FindInRange(t *testing.T) {
	mock := newMock(t)
	repo := NewHabitLogRepository(mock)
	habitID, logID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT id, habit_id, log_date, status, created_at FROM habit_logs WHERE \(habit_id = \$1 AND log_date >= \$2 AND log_date < \$3\) ORDER BY log_date ASC LIMIT 1`).
		WithArgs(habitID, dayStart, dayEnd).
		WillReturnRows(pgxmock.NewRows(logRowColumns).
			AddRow(logID, habitID, dayStart, "missed", dayEnd))

	log, err := repo.FindInRange(context.Background(), habitID, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, logID, log.ID)
	assert.Equal(t, entity.HabitStatusMissed, log.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitLogRepository_FindInRangeEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewHabitLogRepository(mock)
	habitID := uuid.New()

	mock.ExpectQuery(`FROM habit_logs`).
		WithArgs(habitID, dayStart, dayEnd).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindInRange(context.Background(), habitID, dayStart, dayEnd)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitLogRepository_ExistsWithStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewHabitLogRepository(mock)
	habitID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM habit_logs WHERE \(habit_id = \$1 AND log_date >= \$2 AND log_date < \$3\) AND status = \$4\)`).
		WithArgs(habitID, dayStart, dayEnd, "done").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsWithStatus(context.Background(), habitID, dayStart, dayEnd, entity.HabitStatusDone)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitLogRepository_ListInRangeStoreError(t *testing.T) {
	mock := newMock(t)
	repo := NewHabitLogRepository(mock)
	habitID := uuid.New()

	mock.ExpectQuery(`FROM habit_logs`).
		WithArgs(habitID, dayStart, dayEnd).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListInRange(context.Background(), habitID, dayStart, dayEnd)
	assert.ErrorIs(t, err, domain.ErrStore)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitLogRepository_CreateAndUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewHabitLogRepository(mock)

	log := &entity.HabitLog{
		ID:        uuid.New(),
		HabitID:   uuid.New(),
		LogDate:   dayStart,
		Status:    entity.HabitStatusMissed,
		CreatedAt: dayEnd,
	}

	mock.ExpectExec(`INSERT INTO habit_logs`).
		WithArgs(log.ID, log.HabitID, dayStart, "missed", dayEnd).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE habit_logs SET status`).
		WithArgs(log.ID, "done").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Create(context.Background(), log))
	require.NoError(t, repo.UpdateStatus(context.Background(), log.ID, entity.HabitStatusDone))
	require.NoError(t, mock.ExpectationsWereMet())
}
