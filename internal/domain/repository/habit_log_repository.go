package repository

import (
	"context"
	"time"

	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitLogRepository defines the interface for habit log persistence.
// Ranges are half-open: from <= log_date < to.
type HabitLogRepository interface {
	// FindInRange returns the first log of a habit inside the range, or domain.ErrNotFound
	FindInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) (*entity.HabitLog, error)

	// ExistsWithStatus checks for a log with the given status inside the range
	ExistsWithStatus(ctx context.Context, habitID uuid.UUID, from, to time.Time, status entity.HabitStatus) (bool, error)

	// ListInRange returns the logs of a habit inside the range ordered by log_date
	ListInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitLog, error)

	// Create inserts a new log
	Create(ctx context.Context, log *entity.HabitLog) error

	// UpdateStatus changes the status of an existing log
	UpdateStatus(ctx context.Context, logID uuid.UUID, status entity.HabitStatus) error
}
