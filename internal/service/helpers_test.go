package service

import (
	"testing"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

const warsaw = "Europe/Warsaw"

// fixedNow is a Friday well before the dates the tests schedule against.
var fixedNow = time.Date(2026, time.October, 2, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memStore
	habits   *habitService
	ledger   *completionLedger
	stats    *statsService
	detector *dueDetector
	misses   *missRecorder
}

func newFixture(t *testing.T, opts ...DueDetectorOption) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := newMemStore()

	habits := NewHabitService(store, logger).(*habitService)
	habits.now = func() time.Time { return fixedNow }

	ledger := NewCompletionLedger(store, logger).(*completionLedger)
	ledger.now = func() time.Time { return fixedNow }

	return &fixture{
		store:    store,
		habits:   habits,
		ledger:   ledger,
		stats:    NewStatsService(store).(*statsService),
		detector: NewDueDetector(store, ledger, logger, opts...).(*dueDetector),
		misses:   NewMissRecorder(store, ledger, logger).(*missRecorder),
	}
}

func (f *fixture) seedUser(externalID, tz string) entity.User {
	u := entity.User{ID: uuid.New(), ExternalID: externalID, Timezone: tz, CreatedAt: fixedNow}
	f.store.putUser(u)
	return u
}

func (f *fixture) seedHabit(user entity.User, title string, hour, minute int, mask entity.WeekdayMask, createdAt time.Time) entity.Habit {
	h := entity.Habit{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     title,
		Hour:      hour,
		Minute:    minute,
		DaysMask:  mask,
		IsActive:  true,
		CreatedAt: createdAt,
	}
	f.store.putHabit(h)
	return h
}

func date(y int, m time.Month, d int) localtime.Date {
	return localtime.NewDate(y, m, d)
}

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}
