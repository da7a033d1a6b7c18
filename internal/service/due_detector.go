package service

import (
	"context"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SkipHandler is called for every habit left out of a tick because of an error.
type SkipHandler func(habit *entity.ScheduledHabit, err error)

// DueDetectorOption configures the due detector
type DueDetectorOption func(*dueDetector)

// WithConcurrency bounds the number of habits checked in parallel
func WithConcurrency(n int) DueDetectorOption {
	return func(d *dueDetector) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithSkipHandler registers a callback for skipped habits
func WithSkipHandler(fn SkipHandler) DueDetectorOption {
	return func(d *dueDetector) {
		d.onSkip = fn
	}
}

type dueDetector struct {
	uow         repository.UnitOfWork
	ledger      service.CompletionLedger
	logger      *zap.Logger
	concurrency int
	onSkip      SkipHandler
}

// dueMatch is a habit whose slot is the current minute.
type dueMatch struct {
	item *entity.ScheduledHabit
	date localtime.Date
}

// NewDueDetector creates a due detector reading habits through uow and
// completions through ledger
func NewDueDetector(uow repository.UnitOfWork, ledger service.CompletionLedger, logger *zap.Logger, opts ...DueDetectorOption) service.DueDetector {
	d := &dueDetector{
		uow:         uow,
		ledger:      ledger,
		logger:      logger.With(zap.String("component", "due_detector")),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DueHabits matches on the UTC instant of each slot, so a wall time skipped
// by a spring-forward gap fires at the shifted time instead of never.
func (d *dueDetector) DueHabits(ctx context.Context, utcNow time.Time) ([]*entity.Habit, error) {
	matches, err := d.detect(ctx, utcNow)
	if err != nil {
		return nil, err
	}

	habits := make([]*entity.Habit, 0, len(matches))
	for _, m := range matches {
		habits = append(habits, m.item.Habit)
	}
	return habits, nil
}

func (d *dueDetector) DueReminders(ctx context.Context, utcNow time.Time) ([]entity.Reminder, error) {
	matches, err := d.detect(ctx, utcNow)
	if err != nil {
		return nil, err
	}

	minute := utcNow.UTC().Truncate(time.Minute)
	reminders := make([]entity.Reminder, 0, len(matches))
	for _, m := range matches {
		habit := m.item.Habit
		reminders = append(reminders, entity.Reminder{
			HabitID:    habit.ID,
			UserID:     habit.UserID,
			ExternalID: m.item.ExternalID,
			Title:      habit.Title,
			TimeOfDay:  habit.TimeOfDay(),
			Timezone:   m.item.Timezone,
			LocalDate:  m.date.String(),
			DueAt:      minute,
		})
	}
	return reminders, nil
}

// detect returns the due habits in store order. Per-habit failures are
// logged and skipped; only a failed habit listing or a cancelled context
// fails the whole tick.
func (d *dueDetector) detect(ctx context.Context, utcNow time.Time) ([]dueMatch, error) {
	var scheduled []*entity.ScheduledHabit
	err := d.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		scheduled, err = repos.Habits.GetActiveScheduled(ctx)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}

	minute := utcNow.UTC().Truncate(time.Minute)
	results := make([]*dueMatch, len(scheduled))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, item := range scheduled {
		g.Go(func() error {
			match, err := d.check(gctx, item, minute)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				d.skip(item, err)
				return nil
			}
			results[i] = match
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]dueMatch, 0, len(results))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	d.logger.Debug("due detection finished",
		zap.Time("minute", minute),
		zap.Int("active", len(scheduled)),
		zap.Int("due", len(matches)),
	)

	return matches, nil
}

// check reports whether the habit's slot falls on minute and the habit is
// not yet done for that local day.
func (d *dueDetector) check(ctx context.Context, item *entity.ScheduledHabit, minute time.Time) (*dueMatch, error) {
	loc, err := localtime.LoadLocation(item.Timezone)
	if err != nil {
		return nil, err
	}

	habit := item.Habit
	local := localtime.Project(minute, loc)

	if !habit.DaysMask.Has(local.Weekday) {
		return nil, nil
	}

	// Equal to an exact hour:minute match except on DST edges, where a
	// skipped slot fires at the shifted instant and a repeated one fires once.
	if !localtime.ScheduledInstant(local.Date, habit.Hour, habit.Minute, loc).Equal(minute) {
		return nil, nil
	}

	done, err := d.ledger.WasDoneOnLocalDay(ctx, habit.ID, local.Date, item.Timezone)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}

	return &dueMatch{item: item, date: local.Date}, nil
}

func (d *dueDetector) skip(item *entity.ScheduledHabit, err error) {
	d.logger.Warn("skipping habit in due detection",
		zap.String("habit_id", item.Habit.ID.String()),
		zap.String("timezone", item.Timezone),
		zap.Error(err),
	)
	if d.onSkip != nil {
		d.onSkip(item, err)
	}
}
