package app

import (
	"context"
	"fmt"

	"habit-reminder/internal/config"
	"habit-reminder/internal/domain/repository"
	domainservice "habit-reminder/internal/domain/service"
	infradb "habit-reminder/internal/infrastructure/db"
	"habit-reminder/internal/infrastructure/postgres"
	"habit-reminder/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Core holds the database and the services built on it. The service
// process and the operator CLI share it.
type Core struct {
	Habits   domainservice.HabitService
	Ledger   domainservice.CompletionLedger
	Detector domainservice.DueDetector
	Misses   domainservice.MissRecorder
	Stats    domainservice.StatsService

	UnitOfWork repository.UnitOfWork
	pool       *pgxpool.Pool
}

// NewCore connects to PostgreSQL, applies migrations when configured and
// wires the services
func NewCore(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...service.DueDetectorOption) (*Core, error) {
	if cfg.Database.AutoMigrate {
		if err := infradb.Migrate(cfg.Database, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pool, err := infradb.NewPostgresPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	uow := postgres.NewUnitOfWork(pool)
	ledger := service.NewCompletionLedger(uow, logger)
	opts = append([]service.DueDetectorOption{service.WithConcurrency(cfg.Scheduler.Concurrency)}, opts...)

	return &Core{
		Habits:     service.NewHabitService(uow, logger),
		Ledger:     ledger,
		Detector:   service.NewDueDetector(uow, ledger, logger, opts...),
		Misses:     service.NewMissRecorder(uow, ledger, logger),
		Stats:      service.NewStatsService(uow),
		UnitOfWork: uow,
		pool:       pool,
	}, nil
}

// Close releases the connection pool
func (c *Core) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
