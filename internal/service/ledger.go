package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// completionLedger keeps at most one log per (habit, local day). A day is
// always addressed through its UTC range, and new rows are stamped with the
// range start, so the range query is the only notion of "which day".
type completionLedger struct {
	uow    repository.UnitOfWork
	logger *zap.Logger
	now    func() time.Time
}

// NewCompletionLedger creates a new completion ledger
func NewCompletionLedger(uow repository.UnitOfWork, logger *zap.Logger) service.CompletionLedger {
	return &completionLedger{
		uow:    uow,
		logger: logger.With(zap.String("component", "ledger")),
		now:    time.Now,
	}
}

func (l *completionLedger) WasDoneOnLocalDay(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) (bool, error) {
	from, to, err := localtime.LocalDayToUTCRange(date, tz)
	if err != nil {
		return false, err
	}

	var done bool
	err = l.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		done, err = repos.Logs.ExistsWithStatus(ctx, habitID, from, to, entity.HabitStatusDone)
		return err
	})
	if err != nil {
		return false, storeKind(err)
	}

	return done, nil
}

func (l *completionLedger) MarkDone(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) error {
	from, to, err := localtime.LocalDayToUTCRange(date, tz)
	if err != nil {
		return err
	}

	err = l.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		// The row lock serializes check-then-write for this habit
		if _, err := repos.Habits.LockByID(ctx, habitID); err != nil {
			return err
		}

		existing, err := repos.Logs.FindInRange(ctx, habitID, from, to)
		switch {
		case err == nil:
			if existing.Status == entity.HabitStatusDone {
				return nil
			}
			return repos.Logs.UpdateStatus(ctx, existing.ID, entity.HabitStatusDone)
		case errors.Is(err, domain.ErrNotFound):
			return repos.Logs.Create(ctx, l.newLog(habitID, from, entity.HabitStatusDone))
		default:
			return err
		}
	})
	if err != nil {
		return storeKind(err)
	}

	l.logger.Debug("habit marked done", zap.String("habit_id", habitID.String()), zap.Stringer("date", date))
	return nil
}

func (l *completionLedger) MarkMissed(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) (bool, error) {
	from, to, err := localtime.LocalDayToUTCRange(date, tz)
	if err != nil {
		return false, err
	}

	created := false
	err = l.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Habits.LockByID(ctx, habitID); err != nil {
			return err
		}

		// Any existing row wins; MISSED never overwrites DONE
		_, err := repos.Logs.FindInRange(ctx, habitID, from, to)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrNotFound):
			created = true
			return repos.Logs.Create(ctx, l.newLog(habitID, from, entity.HabitStatusMissed))
		default:
			return err
		}
	})
	if err != nil {
		return false, storeKind(err)
	}

	return created, nil
}

func (l *completionLedger) History(ctx context.Context, habitID uuid.UUID, from, to localtime.Date, tz string) ([]*entity.HabitLog, error) {
	if to.Before(from) {
		return nil, validationError(fmt.Errorf("range end %s is before start %s", to, from))
	}

	loc, err := localtime.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	start, _ := localtime.DayRange(from, loc)
	_, end := localtime.DayRange(to, loc)

	var logs []*entity.HabitLog
	err = l.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Habits.GetByID(ctx, habitID); err != nil {
			return err
		}
		var err error
		logs, err = repos.Logs.ListInRange(ctx, habitID, start, end)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}

	return logs, nil
}

func (l *completionLedger) newLog(habitID uuid.UUID, dayStart time.Time, status entity.HabitStatus) *entity.HabitLog {
	return &entity.HabitLog{
		ID:        uuid.New(),
		HabitID:   habitID,
		LogDate:   dayStart,
		Status:    status,
		CreatedAt: l.now().UTC(),
	}
}
