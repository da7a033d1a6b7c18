package postgres

import (
	"context"
	"errors"
	"fmt"

	"habit-reminder/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE of unique_violation.
const uniqueViolation = "23505"

// pgExecutor is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type pgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// storeError maps driver errors onto domain kinds: no rows becomes
// ErrNotFound, a unique violation ErrConflict, everything else ErrStore.
func storeError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}

	return fmt.Errorf("%w: failed to %s: %v", domain.ErrStore, op, err)
}

// expectAffected turns a zero-row update or delete into ErrNotFound.
func expectAffected(op string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
