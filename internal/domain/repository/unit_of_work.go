package repository

import "context"

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Users  UserRepository
	Habits HabitRepository
	Logs   HabitLogRepository
}

// UnitOfWork runs a function inside a single transaction. The transaction
// commits when fn returns nil and rolls back on any error or panic; the
// repositories handed to fn must not be used after it returns.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
