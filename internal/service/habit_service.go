package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type habitService struct {
	uow    repository.UnitOfWork
	logger *zap.Logger
	now    func() time.Time
}

// NewHabitService creates a new habit service
func NewHabitService(uow repository.UnitOfWork, logger *zap.Logger) service.HabitService {
	return &habitService{
		uow:    uow,
		logger: logger.With(zap.String("component", "habit_service")),
		now:    time.Now,
	}
}

func (s *habitService) GetOrCreateUser(ctx context.Context, externalID, tz string) (*entity.User, error) {
	externalID = strings.TrimSpace(externalID)
	tz = strings.TrimSpace(tz)

	if err := validation.ValidateUser(externalID, tz); err != nil {
		if errors.Is(err, domain.ErrInvalidTimezone) {
			return nil, err
		}
		return nil, validationError(err)
	}

	user, err := s.getOrCreateUser(ctx, externalID, tz)
	if errors.Is(err, domain.ErrConflict) {
		// A concurrent call inserted the same external id first; its row is now visible.
		s.logger.Debug("user created concurrently, retrying lookup", zap.String("external_id", externalID))
		user, err = s.getOrCreateUser(ctx, externalID, tz)
	}
	if err != nil {
		return nil, storeKind(err)
	}

	return user, nil
}

func (s *habitService) getOrCreateUser(ctx context.Context, externalID, tz string) (*entity.User, error) {
	var user *entity.User

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		existing, err := repos.Users.GetByExternalID(ctx, externalID)
		switch {
		case err == nil:
			if existing.Timezone != tz {
				if err := repos.Users.UpdateTimezone(ctx, existing.ID, tz); err != nil {
					return err
				}
				s.logger.Info("user timezone changed",
					zap.String("user_id", existing.ID.String()),
					zap.String("from", existing.Timezone),
					zap.String("to", tz),
				)
				existing.Timezone = tz
			}
			user = existing
			return nil

		case errors.Is(err, domain.ErrNotFound):
			user = &entity.User{
				ID:         uuid.New(),
				ExternalID: externalID,
				Timezone:   tz,
				CreatedAt:  s.now().UTC(),
			}
			return repos.Users.Create(ctx, user)

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *habitService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}
	return user, nil
}

func (s *habitService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Users.Delete(ctx, userID)
	})
	if err != nil {
		return storeKind(err)
	}

	s.logger.Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}

func (s *habitService) HabitExists(ctx context.Context, userID uuid.UUID, title string, hour, minute int) (bool, error) {
	var exists bool
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		exists, err = repos.Habits.Exists(ctx, userID, strings.TrimSpace(title), hour, minute)
		return err
	})
	if err != nil {
		return false, storeKind(err)
	}
	return exists, nil
}

func (s *habitService) AddHabit(ctx context.Context, userID uuid.UUID, title string, hour, minute int, daysMask entity.WeekdayMask) (*entity.Habit, error) {
	// Reject malformed input before touching the store
	if err := validation.ValidateHabit(title, hour, minute, int(daysMask)); err != nil {
		return nil, validationError(err)
	}
	if userID == uuid.Nil {
		return nil, validationError(errors.New("user id is required"))
	}

	habit := &entity.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Hour:      hour,
		Minute:    minute,
		DaysMask:  daysMask,
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		exists, err := repos.Habits.Exists(ctx, userID, habit.Title, hour, minute)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %q at %s", domain.ErrDuplicateHabit, habit.Title, habit.TimeOfDay())
		}

		return repos.Habits.Create(ctx, habit)
	})
	if errors.Is(err, domain.ErrConflict) {
		// Lost a race with an identical insert; the unique index caught it.
		return nil, fmt.Errorf("%w: %q at %s", domain.ErrDuplicateHabit, habit.Title, habit.TimeOfDay())
	}
	if err != nil {
		return nil, storeKind(err)
	}

	s.logger.Info("habit created",
		zap.String("habit_id", habit.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("time", habit.TimeOfDay()),
		zap.Stringer("days", habit.DaysMask),
	)

	return habit, nil
}

func (s *habitService) GetHabit(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	var habit *entity.Habit
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		habit, err = repos.Habits.GetByID(ctx, habitID)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}
	return habit, nil
}

func (s *habitService) ActiveHabits(ctx context.Context) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		habits, err = repos.Habits.GetActive(ctx)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}
	return habits, nil
}

func (s *habitService) HabitsForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		habits, err = repos.Habits.GetByUserID(ctx, userID, activeOnly)
		return err
	})
	if err != nil {
		return nil, storeKind(err)
	}
	return habits, nil
}

func (s *habitService) SetHabitActive(ctx context.Context, habitID uuid.UUID, active bool) error {
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Habits.SetActive(ctx, habitID, active)
	})
	if err != nil {
		return storeKind(err)
	}

	s.logger.Info("habit state changed", zap.String("habit_id", habitID.String()), zap.Bool("active", active))
	return nil
}

func (s *habitService) DeleteHabit(ctx context.Context, habitID uuid.UUID) error {
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Habits.Delete(ctx, habitID)
	})
	if err != nil {
		return storeKind(err)
	}

	s.logger.Info("habit deleted", zap.String("habit_id", habitID.String()))
	return nil
}
