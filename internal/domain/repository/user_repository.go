package repository

import (
	"context"

	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user; returns domain.ErrConflict if the external id is taken
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByExternalID retrieves a user by the transport's identifier
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// UpdateTimezone replaces the user's timezone
	UpdateTimezone(ctx context.Context, id uuid.UUID, tz string) error

	// Delete removes a user together with its habits and logs
	Delete(ctx context.Context, id uuid.UUID) error
}
