package repository

import (
	"context"

	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines the interface for habit persistence
type HabitRepository interface {
	// Create inserts a new habit; returns domain.ErrConflict on a duplicate (user, title, hour, minute)
	Create(ctx context.Context, habit *entity.Habit) error

	// GetByID retrieves a habit by ID
	GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// LockByID retrieves a habit and holds a row lock until the transaction ends
	LockByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// Exists checks for a habit with the same owner, title and time of day
	Exists(ctx context.Context, userID uuid.UUID, title string, hour, minute int) (bool, error)

	// GetByUserID retrieves all habits for a user, oldest first
	GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error)

	// GetActive retrieves every active habit
	GetActive(ctx context.Context) ([]*entity.Habit, error)

	// GetActiveScheduled retrieves every active habit joined with its owner's external id and timezone
	GetActiveScheduled(ctx context.Context) ([]*entity.ScheduledHabit, error)

	// SetActive toggles the soft-disable flag
	SetActive(ctx context.Context, habitID uuid.UUID, active bool) error

	// Delete removes a habit and its logs
	Delete(ctx context.Context, habitID uuid.UUID) error
}
