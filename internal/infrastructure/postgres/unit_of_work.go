package postgres

import (
	"context"
	"errors"
	"fmt"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/repository"

	"github.com/jackc/pgx/v5"
)

// txBeginner is satisfied by *pgxpool.Pool and pgxmock pools.
type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type unitOfWork struct {
	db txBeginner
}

// NewUnitOfWork creates a unit of work that runs each call in its own
// read-committed transaction
func NewUnitOfWork(db txBeginner) repository.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) (err error) {
	tx, err := u.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStore, err)
	}

	// Rollback must run even when ctx is already cancelled.
	cleanupCtx := context.WithoutCancel(ctx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(cleanupCtx)
			panic(p)
		}
	}()

	repos := repository.Repositories{
		Users:  NewUserRepository(tx),
		Habits: NewHabitRepository(tx),
		Logs:   NewHabitLogRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(cleanupCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("%w: failed to rollback: %v", domain.ErrStore, rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrStore, err)
	}

	return nil
}
