package postgres

import (
	"context"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	exec pgExecutor
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(exec pgExecutor) repository.UserRepository {
	return &userRepository{exec: exec}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, external_id, tz, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.exec.Exec(ctx, query,
		user.ID,
		user.ExternalID,
		user.Timezone,
		user.CreatedAt,
	)
	if err != nil {
		return storeError("create user", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, external_id, tz, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanOne(ctx, "get user by id", query, id)
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	query := `
		SELECT id, external_id, tz, created_at
		FROM users
		WHERE external_id = $1
	`

	return r.scanOne(ctx, "get user by external id", query, externalID)
}

func (r *userRepository) UpdateTimezone(ctx context.Context, id uuid.UUID, tz string) error {
	query := `UPDATE users SET tz = $2 WHERE id = $1`

	tag, err := r.exec.Exec(ctx, query, id, tz)
	if err != nil {
		return storeError("update user timezone", err)
	}

	return expectAffected("update user timezone", tag)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// habits and habit_logs go with ON DELETE CASCADE
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.exec.Exec(ctx, query, id)
	if err != nil {
		return storeError("delete user", err)
	}

	return expectAffected("delete user", tag)
}

func (r *userRepository) scanOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	user := &entity.User{}
	err := r.exec.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Timezone,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, storeError(op, err)
	}

	return user, nil
}
