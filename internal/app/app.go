package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit-reminder/internal/config"
	"habit-reminder/internal/domain/entity"
	cronpkg "habit-reminder/internal/infrastructure/cron"
	"habit-reminder/internal/infrastructure/kafka"
	"habit-reminder/internal/infrastructure/metrics"
	redispkg "habit-reminder/internal/infrastructure/redis"
	"habit-reminder/internal/logger"
	"habit-reminder/internal/service"
	"habit-reminder/internal/transport/grpc"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App represents the application
type App struct {
	config        *config.Config
	logger        *zap.Logger
	core          *Core
	grpcServer    *grpc.Server
	scheduler     *cronpkg.ReminderScheduler
	producer      *kafka.Producer
	redisClient   *goredis.Client
	metricsServer *metrics.Server
}

// New creates a new application
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg, err := logger.New(cfg.Service.Environment, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	lg = lg.With(zap.String("service", cfg.Service.Name))
	lg.Info("configuration loaded", zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	schedulerMetrics, err := metrics.New(metrics.Options{Registerer: registry})
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	// Initialize database and services
	core, err := NewCore(ctx, cfg, lg, service.WithSkipHandler(func(*entity.ScheduledHabit, error) {
		schedulerMetrics.HabitSkipped()
	}))
	if err != nil {
		return nil, err
	}

	a := &App{
		config:     cfg,
		logger:     lg,
		core:       core,
		grpcServer: grpc.NewServer(grpc.NewReminderHandler(core.Habits, core.Ledger, core.Stats), cfg.GRPC.Port, lg),
	}

	// Initialize reminder scheduler (if enabled)
	if cfg.Scheduler.Enabled {
		redisClient, err := redispkg.NewClient(ctx, cfg.Redis, lg)
		if err != nil {
			core.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.redisClient = redisClient
		a.producer = kafka.NewProducer(cfg.Kafka, lg)

		a.scheduler = cronpkg.NewReminderScheduler(
			core.Detector,
			core.Misses,
			redispkg.NewFireGuard(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.FireGuardTTL),
			a.producer,
			schedulerMetrics,
			cronpkg.Config{
				TickSpec:      cfg.Scheduler.TickSpec,
				TickTimeout:   cfg.Scheduler.TickTimeout,
				MissSweepSpec: cfg.Scheduler.MissSweepSpec,
			},
			lg,
			cronpkg.WithCompletionCheck(core.Ledger),
		)
		lg.Info("reminder scheduler initialized")
	} else {
		lg.Info("reminder scheduler is disabled in configuration")
	}

	if cfg.Metrics.Enabled {
		a.metricsServer = metrics.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry, lg)
	}

	return a, nil
}

// Run starts the application and blocks until SIGINT or SIGTERM
func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	// Setup signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if a.metricsServer != nil {
		a.metricsServer.Start()
	}

	if a.scheduler != nil {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start reminder scheduler: %w", err)
		}
	}

	go func() {
		if err := a.grpcServer.Start(); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	a.logger.Info("service started", zap.Int("grpc_port", a.config.GRPC.Port))

	<-quit
	a.logger.Info("shutting down...")

	a.shutdown()

	a.logger.Info("shutdown complete")
	return nil
}

func (a *App) shutdown() {
	// NOT_SERVING before anything stops
	a.grpcServer.SetServing(false)

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	a.grpcServer.Stop()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Warn("failed to close kafka producer", zap.Error(err))
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}

	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Warn("failed to stop metrics server", zap.Error(err))
		}
	}

	a.core.Close()
}
