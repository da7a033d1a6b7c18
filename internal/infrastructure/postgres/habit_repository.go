package postgres

import (
	"context"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var habitColumns = []string{
	"id", "user_id", "title", "hour", "minute", "days_mask", "is_active", "created_at",
}

type habitRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(exec pgExecutor) repository.HabitRepository {
	return &habitRepository{
		exec:    exec,
		builder: newBuilder(),
	}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (
			id, user_id, title, hour, minute, days_mask, is_active, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.exec.Exec(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Title,
		habit.Hour,
		habit.Minute,
		int(habit.DaysMask),
		habit.IsActive,
		habit.CreatedAt,
	)
	if err != nil {
		return storeError("create habit", err)
	}

	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `
		SELECT id, user_id, title, hour, minute, days_mask, is_active, created_at
		FROM habits
		WHERE id = $1
	`

	habit, err := scanHabit(r.exec.QueryRow(ctx, query, habitID))
	if err != nil {
		return nil, storeError("get habit", err)
	}

	return habit, nil
}

func (r *habitRepository) LockByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	// Serializes concurrent completions of the same habit until commit
	query := `
		SELECT id, user_id, title, hour, minute, days_mask, is_active, created_at
		FROM habits
		WHERE id = $1
		FOR UPDATE
	`

	habit, err := scanHabit(r.exec.QueryRow(ctx, query, habitID))
	if err != nil {
		return nil, storeError("lock habit", err)
	}

	return habit, nil
}

func (r *habitRepository) Exists(ctx context.Context, userID uuid.UUID, title string, hour, minute int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM habits
			WHERE user_id = $1 AND title = $2 AND hour = $3 AND minute = $4
		)
	`

	var exists bool
	if err := r.exec.QueryRow(ctx, query, userID, title, hour, minute).Scan(&exists); err != nil {
		return false, storeError("check habit existence", err)
	}

	return exists, nil
}

func (r *habitRepository) GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	where := squirrel.Eq{"user_id": userID}
	if activeOnly {
		where["is_active"] = true
	}

	query, args, err := r.builder.
		Select(habitColumns...).
		From("habits").
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build habits by user query", err)
	}

	return r.list(ctx, "get habits by user", query, args...)
}

func (r *habitRepository) GetActive(ctx context.Context) ([]*entity.Habit, error) {
	query := `
		SELECT id, user_id, title, hour, minute, days_mask, is_active, created_at
		FROM habits
		WHERE is_active = true
		ORDER BY created_at ASC, id ASC
	`

	return r.list(ctx, "get active habits", query)
}

func (r *habitRepository) GetActiveScheduled(ctx context.Context) ([]*entity.ScheduledHabit, error) {
	query := `
		SELECT
			h.id, h.user_id, h.title, h.hour, h.minute, h.days_mask, h.is_active, h.created_at,
			u.external_id, u.tz
		FROM habits h
		JOIN users u ON u.id = h.user_id
		WHERE h.is_active = true
		ORDER BY h.created_at ASC, h.id ASC
	`

	rows, err := r.exec.Query(ctx, query)
	if err != nil {
		return nil, storeError("get scheduled habits", err)
	}
	defer rows.Close()

	var scheduled []*entity.ScheduledHabit
	for rows.Next() {
		habit := &entity.Habit{}
		item := &entity.ScheduledHabit{Habit: habit}
		var mask int
		err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Title,
			&habit.Hour,
			&habit.Minute,
			&mask,
			&habit.IsActive,
			&habit.CreatedAt,
			&item.ExternalID,
			&item.Timezone,
		)
		if err != nil {
			return nil, storeError("scan scheduled habit", err)
		}
		habit.DaysMask = entity.WeekdayMask(mask)
		scheduled = append(scheduled, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterate scheduled habits", err)
	}

	return scheduled, nil
}

func (r *habitRepository) SetActive(ctx context.Context, habitID uuid.UUID, active bool) error {
	query := `UPDATE habits SET is_active = $2 WHERE id = $1`

	tag, err := r.exec.Exec(ctx, query, habitID, active)
	if err != nil {
		return storeError("update habit state", err)
	}

	return expectAffected("update habit state", tag)
}

func (r *habitRepository) Delete(ctx context.Context, habitID uuid.UUID) error {
	query := `DELETE FROM habits WHERE id = $1`

	tag, err := r.exec.Exec(ctx, query, habitID)
	if err != nil {
		return storeError("delete habit", err)
	}

	return expectAffected("delete habit", tag)
}

func (r *habitRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.Habit, error) {
	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	var habits []*entity.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, storeError(op, err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}

	return habits, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	habit := &entity.Habit{}
	var mask int
	err := row.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Title,
		&habit.Hour,
		&habit.Minute,
		&mask,
		&habit.IsActive,
		&habit.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	habit.DaysMask = entity.WeekdayMask(mask)
	return habit, nil
}
