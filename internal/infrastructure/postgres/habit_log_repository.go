package postgres

import (
	"context"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type habitLogRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewHabitLogRepository creates a new PostgreSQL habit log repository
func NewHabitLogRepository(exec pgExecutor) repository.HabitLogRepository {
	return &habitLogRepository{
		exec:    exec,
		builder: newBuilder(),
	}
}

// inRange selects the logs of one habit with from <= log_date < to.
func inRange(habitID uuid.UUID, from, to time.Time) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"habit_id": habitID},
		squirrel.GtOrEq{"log_date": from},
		squirrel.Lt{"log_date": to},
	}
}

func (r *habitLogRepository) FindInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) (*entity.HabitLog, error) {
	query, args, err := r.builder.
		Select("id", "habit_id", "log_date", "status", "created_at").
		From("habit_logs").
		Where(inRange(habitID, from, to)).
		OrderBy("log_date ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storeError("build habit log query", err)
	}

	log, err := scanHabitLog(r.exec.QueryRow(ctx, query, args...).Scan)
	if err != nil {
		return nil, storeError("find habit log", err)
	}

	return log, nil
}

func (r *habitLogRepository) ExistsWithStatus(ctx context.Context, habitID uuid.UUID, from, to time.Time, status entity.HabitStatus) (bool, error) {
	sub, args, err := r.builder.
		Select("1").
		From("habit_logs").
		Where(inRange(habitID, from, to)).
		Where(squirrel.Eq{"status": string(status)}).
		ToSql()
	if err != nil {
		return false, storeError("build habit log existence query", err)
	}

	var exists bool
	if err := r.exec.QueryRow(ctx, "SELECT EXISTS("+sub+")", args...).Scan(&exists); err != nil {
		return false, storeError("check habit log existence", err)
	}

	return exists, nil
}

func (r *habitLogRepository) ListInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitLog, error) {
	query, args, err := r.builder.
		Select("id", "habit_id", "log_date", "status", "created_at").
		From("habit_logs").
		Where(inRange(habitID, from, to)).
		OrderBy("log_date ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build habit log list query", err)
	}

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list habit logs", err)
	}
	defer rows.Close()

	var logs []*entity.HabitLog
	for rows.Next() {
		log, err := scanHabitLog(rows.Scan)
		if err != nil {
			return nil, storeError("scan habit log", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterate habit logs", err)
	}

	return logs, nil
}

func (r *habitLogRepository) Create(ctx context.Context, log *entity.HabitLog) error {
	query := `
		INSERT INTO habit_logs (id, habit_id, log_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.exec.Exec(ctx, query,
		log.ID,
		log.HabitID,
		log.LogDate,
		string(log.Status),
		log.CreatedAt,
	)
	if err != nil {
		return storeError("create habit log", err)
	}

	return nil
}

func (r *habitLogRepository) UpdateStatus(ctx context.Context, logID uuid.UUID, status entity.HabitStatus) error {
	query := `UPDATE habit_logs SET status = $2 WHERE id = $1`

	tag, err := r.exec.Exec(ctx, query, logID, string(status))
	if err != nil {
		return storeError("update habit log", err)
	}

	return expectAffected("update habit log", tag)
}

func scanHabitLog(scan func(dest ...any) error) (*entity.HabitLog, error) {
	log := &entity.HabitLog{}
	var status string
	if err := scan(&log.ID, &log.HabitID, &log.LogDate, &status, &log.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := entity.ParseHabitStatus(status)
	if err != nil {
		return nil, err
	}
	log.Status = parsed
	log.LogDate = log.LogDate.UTC()

	return log, nil
}
