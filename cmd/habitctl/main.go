package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"habit-reminder/internal/app"
	"habit-reminder/internal/cli"
	"habit-reminder/internal/config"
	infradb "habit-reminder/internal/infrastructure/db"
	"habit-reminder/internal/logger"

	_ "time/tzdata"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Env{
		Open:    openServices,
		Migrate: migrate,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.UserMessage(err))
		stop()
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg, err := logger.New(cfg.Service.Environment, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, lg.With(zap.String("service", "habitctl")), nil
}

func openServices(ctx context.Context) (*cli.Services, func(), error) {
	cfg, lg, err := setup()
	if err != nil {
		return nil, nil, err
	}

	core, err := app.NewCore(ctx, cfg, lg)
	if err != nil {
		return nil, nil, err
	}

	release := func() {
		core.Close()
		_ = lg.Sync()
	}
	return &cli.Services{
		Habits:   core.Habits,
		Ledger:   core.Ledger,
		Detector: core.Detector,
		Stats:    core.Stats,
	}, release, nil
}

func migrate(_ context.Context, down bool, steps int) error {
	cfg, lg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	if down {
		return infradb.MigrateDown(cfg.Database, steps)
	}
	return infradb.Migrate(cfg.Database, lg)
}
