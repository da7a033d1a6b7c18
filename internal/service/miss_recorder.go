package service

import (
	"context"
	"errors"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"

	"go.uber.org/zap"
)

type missRecorder struct {
	uow    repository.UnitOfWork
	ledger service.CompletionLedger
	logger *zap.Logger
}

// NewMissRecorder creates the job body that closes finished days
func NewMissRecorder(uow repository.UnitOfWork, ledger service.CompletionLedger, logger *zap.Logger) service.MissRecorder {
	return &missRecorder{
		uow:    uow,
		ledger: ledger,
		logger: logger.With(zap.String("component", "miss_recorder")),
	}
}

// RecordMissed looks at each active habit's local yesterday. When that day
// was scheduled, its slot came after the habit was created and no log exists,
// a MISSED row is written. Running it repeatedly is harmless.
func (m *missRecorder) RecordMissed(ctx context.Context, utcNow time.Time) (int, error) {
	var scheduled []*entity.ScheduledHabit
	err := m.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		scheduled, err = repos.Habits.GetActiveScheduled(ctx)
		return err
	})
	if err != nil {
		return 0, storeKind(err)
	}

	recorded := 0
	for _, item := range scheduled {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}

		habit := item.Habit
		loc, err := localtime.LoadLocation(item.Timezone)
		if err != nil {
			m.logger.Warn("skipping habit with invalid timezone",
				zap.String("habit_id", habit.ID.String()),
				zap.String("timezone", item.Timezone),
				zap.Error(err),
			)
			continue
		}

		yesterday := localtime.Project(utcNow, loc).Date.AddDays(-1)
		if !habit.DaysMask.Has(yesterday.Weekday()) {
			continue
		}
		if !habit.CreatedAt.Before(localtime.ScheduledInstant(yesterday, habit.Hour, habit.Minute, loc)) {
			continue
		}

		created, err := m.ledger.MarkMissed(ctx, habit.ID, yesterday, item.Timezone)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// deleted since the listing
				continue
			}
			m.logger.Warn("failed to record missed day",
				zap.String("habit_id", habit.ID.String()),
				zap.Stringer("date", yesterday),
				zap.Error(err),
			)
			continue
		}
		if created {
			recorded++
		}
	}

	if recorded > 0 {
		m.logger.Info("missed days recorded", zap.Int("count", recorded))
	}

	return recorded, nil
}
