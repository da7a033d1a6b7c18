package service

import (
	"context"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
)

// statsWindowDays is the length of the trailing report window.
const statsWindowDays = 7

type statsService struct {
	uow repository.UnitOfWork
}

// NewStatsService creates a new stats service
func NewStatsService(uow repository.UnitOfWork) service.StatsService {
	return &statsService{uow: uow}
}

// StatsLast7Days counts DONE days per habit over date-6..date. Every day of
// the window counts, including days before the habit existed and days its
// mask does not schedule, so missed is always 7 - done.
func (s *statsService) StatsLast7Days(ctx context.Context, userID uuid.UUID, date localtime.Date, tz string) ([]entity.StatRow, error) {
	loc, err := localtime.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	days := make([]dayBounds, statsWindowDays)
	for i := range days {
		days[i].start, days[i].end = localtime.DayRange(date.AddDays(-i), loc)
	}
	windowStart, _ := localtime.DayRange(date.AddDays(-(statsWindowDays - 1)), loc)
	_, windowEnd := localtime.DayRange(date, loc)

	var rows []entity.StatRow
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		habits, err := repos.Habits.GetByUserID(ctx, userID, false)
		if err != nil {
			return err
		}

		rows = make([]entity.StatRow, 0, len(habits))
		for _, habit := range habits {
			logs, err := repos.Logs.ListInRange(ctx, habit.ID, windowStart, windowEnd)
			if err != nil {
				return err
			}

			done := 0
			for _, day := range days {
				if day.hasDone(logs) {
					done++
				}
			}

			rows = append(rows, entity.StatRow{
				HabitID: habit.ID,
				Title:   habit.Title,
				Done:    done,
				Missed:  statsWindowDays - done,
			})
		}
		return nil
	})
	if err != nil {
		return nil, storeKind(err)
	}

	return rows, nil
}

type dayBounds struct {
	start, end time.Time
}

func (d dayBounds) hasDone(logs []*entity.HabitLog) bool {
	for _, log := range logs {
		if log.Status == entity.HabitStatusDone && !log.LogDate.Before(d.start) && log.LogDate.Before(d.end) {
			return true
		}
	}
	return false
}
