package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory relational store. Each unit of work holds the
// store lock and restores a snapshot when fn fails.
type memStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]entity.User
	habits map[uuid.UUID]entity.Habit
	logs   map[uuid.UUID]entity.HabitLog

	// failOn makes the named repository operation return the error once.
	failOn map[string]error
	// racingUser is committed by a simulated concurrent transaction right
	// before the next Users.Create checks uniqueness. It survives rollback.
	racingUser *entity.User
	survivors  []entity.User

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[uuid.UUID]entity.User{},
		habits: map[uuid.UUID]entity.Habit{},
		logs:   map[uuid.UUID]entity.HabitLog{},
		failOn: map[string]error{},
	}
}

func (s *memStore) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, habits, logs := cloneMap(s.users), cloneMap(s.habits), cloneMap(s.logs)
	defer func() {
		if p := recover(); p != nil {
			s.users, s.habits, s.logs = users, habits, logs
			s.rollbacks++
			panic(p)
		}
	}()

	repos := repository.Repositories{
		Users:  &memUsers{s},
		Habits: &memHabits{s},
		Logs:   &memLogs{s},
	}
	defer func() { s.survivors = nil }()
	if err := fn(ctx, repos); err != nil {
		s.users, s.habits, s.logs = users, habits, logs
		for _, u := range s.survivors {
			s.users[u.ID] = u
		}
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *memStore) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		delete(s.failOn, op)
		return err
	}
	return nil
}

// Test helpers; callers must not hold the lock.

func (s *memStore) logCount(habitID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.logs {
		if l.HabitID == habitID {
			n++
		}
	}
	return n
}

func (s *memStore) habitLogs(habitID uuid.UUID) []entity.HabitLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.HabitLog
	for _, l := range s.logs {
		if l.HabitID == habitID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogDate.Before(out[j].LogDate) })
	return out
}

func (s *memStore) putUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *memStore) putHabit(h entity.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits[h.ID] = h
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, user *entity.User) error {
	if err := r.s.fail("users.create"); err != nil {
		return err
	}
	if u := r.s.racingUser; u != nil {
		r.s.racingUser = nil
		r.s.users[u.ID] = *u
		r.s.survivors = append(r.s.survivors, *u)
	}
	for _, u := range r.s.users {
		if u.ExternalID == user.ExternalID {
			return domain.ErrConflict
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *memUsers) GetByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	if err := r.s.fail("users.get_by_external_id"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.ExternalID == externalID {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUsers) UpdateTimezone(_ context.Context, id uuid.UUID, tz string) error {
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Timezone = tz
	r.s.users[id] = u
	return nil
}

func (r *memUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	for hid, h := range r.s.habits {
		if h.UserID == id {
			(&memHabits{r.s}).cascade(hid)
		}
	}
	return nil
}

type memHabits struct{ s *memStore }

func (r *memHabits) Create(_ context.Context, habit *entity.Habit) error {
	if err := r.s.fail("habits.create"); err != nil {
		return err
	}
	for _, h := range r.s.habits {
		if h.UserID == habit.UserID && h.Title == habit.Title && h.Hour == habit.Hour && h.Minute == habit.Minute {
			return domain.ErrConflict
		}
	}
	r.s.habits[habit.ID] = *habit
	return nil
}

func (r *memHabits) GetByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.s.habits[id]
	if !ok {
		return nil, fmt.Errorf("habit %s: %w", id, domain.ErrNotFound)
	}
	return &h, nil
}

func (r *memHabits) LockByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	return r.GetByID(ctx, id)
}

func (r *memHabits) Exists(_ context.Context, userID uuid.UUID, title string, hour, minute int) (bool, error) {
	if err := r.s.fail("habits.exists"); err != nil {
		return false, err
	}
	for _, h := range r.s.habits {
		if h.UserID == userID && h.Title == title && h.Hour == hour && h.Minute == minute {
			return true, nil
		}
	}
	return false, nil
}

func (r *memHabits) GetByUserID(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.sorted() {
		if h.UserID == userID && (!activeOnly || h.IsActive) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memHabits) GetActive(_ context.Context) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.sorted() {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memHabits) GetActiveScheduled(_ context.Context) ([]*entity.ScheduledHabit, error) {
	if err := r.s.fail("habits.get_active_scheduled"); err != nil {
		return nil, err
	}
	var out []*entity.ScheduledHabit
	for _, h := range r.sorted() {
		if !h.IsActive {
			continue
		}
		u, ok := r.s.users[h.UserID]
		if !ok {
			continue
		}
		out = append(out, &entity.ScheduledHabit{Habit: h, ExternalID: u.ExternalID, Timezone: u.Timezone})
	}
	return out, nil
}

func (r *memHabits) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	h, ok := r.s.habits[id]
	if !ok {
		return domain.ErrNotFound
	}
	h.IsActive = active
	r.s.habits[id] = h
	return nil
}

func (r *memHabits) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.habits[id]; !ok {
		return domain.ErrNotFound
	}
	r.cascade(id)
	return nil
}

func (r *memHabits) cascade(id uuid.UUID) {
	delete(r.s.habits, id)
	for lid, l := range r.s.logs {
		if l.HabitID == id {
			delete(r.s.logs, lid)
		}
	}
}

// sorted returns copies ordered by created_at, id.
func (r *memHabits) sorted() []*entity.Habit {
	out := make([]*entity.Habit, 0, len(r.s.habits))
	for _, h := range r.s.habits {
		h := h
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

type memLogs struct{ s *memStore }

func (r *memLogs) inRange(habitID uuid.UUID, from, to time.Time) []*entity.HabitLog {
	var out []*entity.HabitLog
	for _, l := range r.s.logs {
		if l.HabitID == habitID && !l.LogDate.Before(from) && l.LogDate.Before(to) {
			l := l
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogDate.Before(out[j].LogDate) })
	return out
}

func (r *memLogs) FindInRange(_ context.Context, habitID uuid.UUID, from, to time.Time) (*entity.HabitLog, error) {
	if err := r.s.fail("logs.find_in_range"); err != nil {
		return nil, err
	}
	logs := r.inRange(habitID, from, to)
	if len(logs) == 0 {
		return nil, domain.ErrNotFound
	}
	return logs[0], nil
}

func (r *memLogs) ExistsWithStatus(_ context.Context, habitID uuid.UUID, from, to time.Time, status entity.HabitStatus) (bool, error) {
	if err := r.s.fail("logs.exists_with_status"); err != nil {
		return false, err
	}
	for _, l := range r.inRange(habitID, from, to) {
		if l.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (r *memLogs) ListInRange(_ context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitLog, error) {
	return r.inRange(habitID, from, to), nil
}

func (r *memLogs) Create(_ context.Context, log *entity.HabitLog) error {
	if err := r.s.fail("logs.create"); err != nil {
		return err
	}
	if _, ok := r.s.habits[log.HabitID]; !ok {
		return errors.New("foreign key violation")
	}
	r.s.logs[log.ID] = *log
	return nil
}

func (r *memLogs) UpdateStatus(_ context.Context, logID uuid.UUID, status entity.HabitStatus) error {
	l, ok := r.s.logs[logID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Status = status
	r.s.logs[logID] = l
	return nil
}
