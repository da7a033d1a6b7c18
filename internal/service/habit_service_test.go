package service

import (
	"context"
	"errors"
	"testing"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.habits.GetOrCreateUser(ctx, "tg:42", warsaw)
	require.NoError(t, err)
	assert.Equal(t, "tg:42", created.ExternalID)
	assert.Equal(t, fixedNow, created.CreatedAt)

	again, err := f.habits.GetOrCreateUser(ctx, " tg:42 ", warsaw)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	moved, err := f.habits.GetOrCreateUser(ctx, "tg:42", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, created.ID, moved.ID)
	assert.Equal(t, "Asia/Tokyo", moved.Timezone)

	stored, err := f.habits.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", stored.Timezone)
}

func TestGetOrCreateUser_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.habits.GetOrCreateUser(ctx, "tg:1", "Mars/Base")
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)

	_, err = f.habits.GetOrCreateUser(ctx, "  ", "UTC")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Zero(t, f.store.commits+f.store.rollbacks, "validation must happen before the store")
}

func TestGetOrCreateUser_RetriesAfterConcurrentInsert(t *testing.T) {
	f := newFixture(t)
	winner := &entity.User{ID: uuid.New(), ExternalID: "tg:7", Timezone: "UTC", CreatedAt: fixedNow}
	f.store.racingUser = winner

	user, err := f.habits.GetOrCreateUser(context.Background(), "tg:7", "UTC")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, user.ID)
	assert.Equal(t, 1, f.store.rollbacks)
	assert.Len(t, f.store.users, 1)
}

func TestGetOrCreateUser_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failOn["users.get_by_external_id"] = errors.New("connection refused")

	_, err := f.habits.GetOrCreateUser(context.Background(), "tg:1", "UTC")
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestAddHabit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser("tg:1", warsaw)

	habit, err := f.habits.AddHabit(ctx, user.ID, "  Drink water ", 9, 30, entity.Weekdays)
	require.NoError(t, err)
	assert.Equal(t, "Drink water", habit.Title)
	assert.True(t, habit.IsActive)
	assert.Equal(t, fixedNow, habit.CreatedAt)

	exists, err := f.habits.HabitExists(ctx, user.ID, "Drink water", 9, 30)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.habits.HabitExists(ctx, user.ID, "Drink water", 9, 31)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAddHabit_DuplicateRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser("tg:1", warsaw)

	_, err := f.habits.AddHabit(ctx, user.ID, "Read", 21, 0, entity.EveryDay)
	require.NoError(t, err)

	_, err = f.habits.AddHabit(ctx, user.ID, "Read", 21, 0, entity.Weekend)
	assert.ErrorIs(t, err, domain.ErrDuplicateHabit)

	habits, err := f.habits.HabitsForUser(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}

func TestAddHabit_UniqueIndexIsDuplicate(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	f.store.failOn["habits.create"] = domain.ErrConflict

	_, err := f.habits.AddHabit(context.Background(), user.ID, "Read", 21, 0, entity.EveryDay)
	assert.ErrorIs(t, err, domain.ErrDuplicateHabit)
	assert.Empty(t, f.store.habits)
}

func TestAddHabit_Validation(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)

	tests := []struct {
		name   string
		title  string
		hour   int
		minute int
		mask   entity.WeekdayMask
	}{
		{"blank title", "   ", 9, 0, entity.EveryDay},
		{"hour too large", "Run", 24, 0, entity.EveryDay},
		{"negative minute", "Run", 9, -1, entity.EveryDay},
		{"empty mask", "Run", 9, 0, 0},
		{"mask overflow", "Run", 9, 0, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.habits.AddHabit(context.Background(), user.ID, tt.title, tt.hour, tt.minute, tt.mask)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Zero(t, f.store.commits+f.store.rollbacks)
}

func TestAddHabit_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.habits.AddHabit(context.Background(), uuid.New(), "Run", 7, 0, entity.EveryDay)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddHabit_StoreFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser("tg:1", warsaw)
	f.store.failOn["habits.exists"] = errors.New("i/o timeout")

	_, err := f.habits.AddHabit(context.Background(), user.ID, "Run", 7, 0, entity.EveryDay)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.Equal(t, 1, f.store.rollbacks)
	assert.Empty(t, f.store.habits)
}

func TestSetHabitActiveAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser("tg:1", warsaw)
	first := f.seedHabit(user, "Run", 7, 0, entity.EveryDay, fixedNow)
	second := f.seedHabit(user, "Read", 21, 0, entity.EveryDay, fixedNow.Add(1))

	require.NoError(t, f.habits.SetHabitActive(ctx, first.ID, false))

	active, err := f.habits.ActiveHabits(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := f.habits.HabitsForUser(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, f.ledger.MarkDone(ctx, second.ID, date(2026, 10, 12), warsaw))
	require.NoError(t, f.habits.DeleteHabit(ctx, second.ID))
	assert.Zero(t, f.store.logCount(second.ID))

	_, err = f.habits.GetHabit(ctx, second.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.habits.DeleteHabit(ctx, second.ID), domain.ErrNotFound)
	assert.ErrorIs(t, f.habits.SetHabitActive(ctx, uuid.New(), true), domain.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser("tg:1", warsaw)
	habit := f.seedHabit(user, "Run", 7, 0, entity.EveryDay, fixedNow)
	require.NoError(t, f.ledger.MarkDone(ctx, habit.ID, date(2026, 10, 12), warsaw))

	require.NoError(t, f.habits.DeleteUser(ctx, user.ID))

	assert.Empty(t, f.store.habits)
	assert.Empty(t, f.store.logs)
	_, err := f.habits.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
