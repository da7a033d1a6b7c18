package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-12 is a Monday; Warsaw is on CEST (UTC+2) until Oct 25.
var mondayNineWarsaw = utc(2026, time.October, 12, 7, 0)

func habitIDs(habits []*entity.Habit) []string {
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID.String())
	}
	return ids
}

func TestDueHabits_ExactLocalMinute(t *testing.T) {
	f := newFixture(t, WithConcurrency(4))
	user := f.seedUser("tg:1", warsaw)
	habit := f.seedHabit(user, "Stretch", 9, 0, entity.Monday, fixedNow)
	ctx := context.Background()

	tests := []struct {
		name string
		now  time.Time
		due  bool
	}{
		{"monday 09:00", mondayNineWarsaw, true},
		{"monday 09:00:42", mondayNineWarsaw.Add(42 * time.Second), true},
		{"monday 08:59", mondayNineWarsaw.Add(-time.Minute), false},
		{"monday 09:01", mondayNineWarsaw.Add(time.Minute), false},
		{"tuesday 09:00", mondayNineWarsaw.AddDate(0, 0, 1), false},
		{"next monday 09:00", mondayNineWarsaw.AddDate(0, 0, 7), true},
		{"09:00 utc", utc(2026, time.October, 12, 9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := f.detector.DueHabits(ctx, tt.now)
			require.NoError(t, err)
			if tt.due {
				assert.Equal(t, []string{habit.ID.String()}, habitIDs(due))
			} else {
				assert.Empty(t, due)
			}
		})
	}
}

func TestDueHabits_DoublePollAfterDone(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	habit := f.seedHabit(user, "Stretch", 9, 0, entity.Monday, fixedNow)
	ctx := context.Background()

	due, err := f.detector.DueHabits(ctx, mondayNineWarsaw)
	require.NoError(t, err)
	require.Len(t, due, 1)

	require.NoError(t, f.ledger.MarkDone(ctx, habit.ID, date(2026, time.October, 12), warsaw))

	due, err = f.detector.DueHabits(ctx, mondayNineWarsaw.Add(30*time.Second))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestDueHabits_SkipsInactive(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	habit := f.seedHabit(user, "Stretch", 9, 0, entity.EveryDay, fixedNow)
	require.NoError(t, f.habits.SetHabitActive(context.Background(), habit.ID, false))

	due, err := f.detector.DueHabits(context.Background(), mondayNineWarsaw)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestDueHabits_UsersInDifferentZonesKeepStoreOrder(t *testing.T) {
	f := newFixture(t, WithConcurrency(8))
	warsawUser := f.seedUser("tg:1", warsaw)
	tokyoUser := f.seedUser("tg:2", "Asia/Tokyo")
	offsetUser := f.seedUser("tg:3", "UTC-05:00")

	first := f.seedHabit(tokyoUser, "Tea", 16, 0, entity.Monday, fixedNow)
	second := f.seedHabit(warsawUser, "Stretch", 9, 0, entity.Monday, fixedNow.Add(time.Second))
	third := f.seedHabit(offsetUser, "Walk", 2, 0, entity.Monday, fixedNow.Add(2*time.Second))
	// Sunday 02:00 at UTC-5 is not Monday: not due.
	f.seedHabit(offsetUser, "Sleep", 2, 0, entity.Sunday, fixedNow.Add(3*time.Second))

	due, err := f.detector.DueHabits(context.Background(), mondayNineWarsaw)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID.String(), second.ID.String(), third.ID.String()}, habitIDs(due))
}

func TestDueHabits_PerHabitFailuresAreSkipped(t *testing.T) {
	var (
		mu      sync.Mutex
		skipped []string
	)
	f := newFixture(t, WithSkipHandler(func(h *entity.ScheduledHabit, err error) {
		mu.Lock()
		defer mu.Unlock()
		skipped = append(skipped, h.Habit.Title)
	}))

	broken := f.seedUser("tg:1", "Atlantis/Capital")
	flaky := f.seedUser("tg:2", warsaw)
	healthy := f.seedUser("tg:3", warsaw)

	f.seedHabit(broken, "Swim", 9, 0, entity.EveryDay, fixedNow)
	f.seedHabit(flaky, "Stretch", 9, 0, entity.EveryDay, fixedNow.Add(time.Second))
	ok := f.seedHabit(healthy, "Read", 9, 0, entity.EveryDay, fixedNow.Add(2*time.Second))

	// The first ledger read fails; with one worker that is the flaky habit.
	f.store.failOn["logs.exists_with_status"] = errors.New("statement timeout")

	due, err := f.detector.DueHabits(context.Background(), mondayNineWarsaw)
	require.NoError(t, err)
	assert.Equal(t, []string{ok.ID.String()}, habitIDs(due))
	assert.Equal(t, []string{"Swim", "Stretch"}, skipped)
}

func TestDueHabits_ListingFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failOn["habits.get_active_scheduled"] = errors.New("connection reset")

	_, err := f.detector.DueHabits(context.Background(), mondayNineWarsaw)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestDueHabits_CancelledContext(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	f.seedHabit(user, "Stretch", 9, 0, entity.EveryDay, fixedNow)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.detector.DueHabits(ctx, mondayNineWarsaw)
	assert.Error(t, err)
}

func TestDueHabits_DSTTransitions(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	nine := f.seedHabit(user, "Stretch", 9, 0, entity.EveryDay, fixedNow.AddDate(0, -8, 0))
	gap := f.seedHabit(user, "Night shift", 2, 30, entity.EveryDay, fixedNow.AddDate(0, -8, 0).Add(time.Second))
	ctx := context.Background()

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		// 2026-03-29: clocks jump 02:00 -> 03:00, local day is 23h.
		{"spring forward 09:00 CEST", utc(2026, time.March, 29, 7, 0), []string{nine.ID.String()}},
		{"spring forward 08:00Z is 10:00", utc(2026, time.March, 29, 8, 0), nil},
		{"skipped 02:30 fires at 03:30", utc(2026, time.March, 29, 1, 30), []string{gap.ID.String()}},
		{"02:30 the day before", utc(2026, time.March, 28, 1, 30), []string{gap.ID.String()}},

		// 2026-10-25: clocks fall back 03:00 -> 02:00, local day is 25h.
		{"fall back 09:00 CET", utc(2026, time.October, 25, 8, 0), []string{nine.ID.String()}},
		{"fall back 07:00Z is 08:00", utc(2026, time.October, 25, 7, 0), nil},
		{"first 02:30 does not fire", utc(2026, time.October, 25, 0, 30), nil},
		{"second 02:30 fires", utc(2026, time.October, 25, 1, 30), []string{gap.ID.String()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := f.detector.DueHabits(ctx, tt.now)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, due)
				return
			}
			assert.Equal(t, tt.want, habitIDs(due))
		})
	}
}

func TestDueReminders(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:99", "Pacific/Honolulu")
	habit := f.seedHabit(user, "Journal", 21, 0, entity.Sunday, fixedNow)

	// Monday 07:00Z is Sunday 21:00 in Honolulu.
	reminders, err := f.detector.DueReminders(context.Background(), mondayNineWarsaw.Add(5*time.Second))
	require.NoError(t, err)
	require.Len(t, reminders, 1)

	r := reminders[0]
	assert.Equal(t, habit.ID, r.HabitID)
	assert.Equal(t, user.ID, r.UserID)
	assert.Equal(t, "tg:99", r.ExternalID)
	assert.Equal(t, "Journal", r.Title)
	assert.Equal(t, "21:00", r.TimeOfDay)
	assert.Equal(t, "Pacific/Honolulu", r.Timezone)
	assert.Equal(t, "2026-10-11", r.LocalDate)
	assert.True(t, r.DueAt.Equal(mondayNineWarsaw))
}
