package service

import (
	"context"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
)

// HabitService defines users and habits management
type HabitService interface {
	// GetOrCreateUser returns the user for an external id, creating it on first contact
	// and updating its timezone when the supplied one differs
	GetOrCreateUser(ctx context.Context, externalID, tz string) (*entity.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteUser removes a user with all of its habits and logs
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// HabitExists checks for a habit with the same owner, title and time of day
	HabitExists(ctx context.Context, userID uuid.UUID, title string, hour, minute int) (bool, error)

	// AddHabit creates a habit after validation and a duplicate check
	AddHabit(ctx context.Context, userID uuid.UUID, title string, hour, minute int, daysMask entity.WeekdayMask) (*entity.Habit, error)

	// GetHabit retrieves a habit by ID
	GetHabit(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// ActiveHabits retrieves every active habit
	ActiveHabits(ctx context.Context) ([]*entity.Habit, error)

	// HabitsForUser retrieves a user's habits
	HabitsForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error)

	// SetHabitActive soft-enables or soft-disables a habit
	SetHabitActive(ctx context.Context, habitID uuid.UUID, active bool) error

	// DeleteHabit removes a habit with its logs
	DeleteHabit(ctx context.Context, habitID uuid.UUID) error
}

// CompletionLedger keeps at most one log per habit per local day
type CompletionLedger interface {
	// WasDoneOnLocalDay reports whether the habit is marked done on the local day
	WasDoneOnLocalDay(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) (bool, error)

	// MarkDone records DONE for the local day; repeated calls leave exactly one row
	MarkDone(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) error

	// MarkMissed records MISSED for the local day unless the day already has a log
	MarkMissed(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) (bool, error)

	// History lists the logs of a habit for local days from..to inclusive
	History(ctx context.Context, habitID uuid.UUID, from, to localtime.Date, tz string) ([]*entity.HabitLog, error)
}

// DueDetector finds the habits whose reminder time is now
type DueDetector interface {
	// DueHabits returns active habits scheduled for the current local minute and not yet done today.
	// A slot inside a spring-forward gap (02:30) fires at the shifted wall time (03:30).
	DueHabits(ctx context.Context, utcNow time.Time) ([]*entity.Habit, error)

	// DueReminders is DueHabits with the owner fields the transport needs
	DueReminders(ctx context.Context, utcNow time.Time) ([]entity.Reminder, error)
}

// MissRecorder writes MISSED logs for scheduled days that ended without a log
type MissRecorder interface {
	// RecordMissed checks each active habit's previous local day and returns the number of rows written
	RecordMissed(ctx context.Context, utcNow time.Time) (int, error)
}

// StatsService reports completion counts
type StatsService interface {
	// StatsLast7Days reports done/missed counts over the 7 local days ending at date
	StatsLast7Days(ctx context.Context, userID uuid.UUID, date localtime.Date, tz string) ([]entity.StatRow, error)
}
