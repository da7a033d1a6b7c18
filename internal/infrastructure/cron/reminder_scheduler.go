package cron

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/service"
	"habit-reminder/internal/infrastructure/metrics"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FireGuard deduplicates reminders per habit and local day
type FireGuard interface {
	Acquire(ctx context.Context, habitID uuid.UUID, localDate string) (bool, error)
	Release(ctx context.Context, habitID uuid.UUID, localDate string) error
}

// ReminderPublisher hands reminders to the chat transport
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, reminder entity.Reminder) error
}

// CompletionChecker reports whether a habit is already done for a local day
type CompletionChecker interface {
	WasDoneOnLocalDay(ctx context.Context, habitID uuid.UUID, date localtime.Date, tz string) (bool, error)
}

// Option configures the reminder scheduler
type Option func(*ReminderScheduler)

// WithCompletionCheck makes retries of failed reminders skip habits that
// were marked done in the meantime
func WithCompletionCheck(checker CompletionChecker) Option {
	return func(s *ReminderScheduler) {
		s.completions = checker
	}
}

// Config holds the job schedules
type Config struct {
	TickSpec      string
	TickTimeout   time.Duration
	MissSweepSpec string
}

// ReminderScheduler polls the due detector every minute and publishes the
// result; a second job closes finished days with MISSED logs
type ReminderScheduler struct {
	detector  service.DueDetector
	misses    service.MissRecorder
	guard     FireGuard
	publisher ReminderPublisher
	metrics   *metrics.SchedulerMetrics
	logger    *zap.Logger
	cfg       Config
	cron      *cron.Cron
	now       func() time.Time

	completions CompletionChecker

	mu      sync.Mutex
	retries map[string]entity.Reminder
}

// NewReminderScheduler creates a new reminder scheduler. Jobs run in UTC and
// an overrunning job makes the next run skip instead of overlap.
func NewReminderScheduler(
	detector service.DueDetector,
	misses service.MissRecorder,
	guard FireGuard,
	publisher ReminderPublisher,
	m *metrics.SchedulerMetrics,
	cfg Config,
	logger *zap.Logger,
	opts ...Option,
) *ReminderScheduler {
	logger = logger.With(zap.String("component", "reminder_scheduler"))
	cronLogger := newCronLogger(logger)

	if cfg.TickTimeout <= 0 {
		cfg.TickTimeout = 50 * time.Second
	}

	s := &ReminderScheduler{
		detector:  detector,
		misses:    misses,
		guard:     guard,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		now:     time.Now,
		retries: make(map[string]entity.Reminder),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the jobs and starts the scheduler
func (s *ReminderScheduler) Start() error {
	s.logger.Info("starting reminder scheduler",
		zap.String("tick_spec", s.cfg.TickSpec),
		zap.String("miss_sweep_spec", s.cfg.MissSweepSpec),
	)

	if _, err := s.cron.AddFunc(s.cfg.TickSpec, s.runReminders); err != nil {
		return fmt.Errorf("failed to add reminder job: %w", err)
	}

	if s.cfg.MissSweepSpec != "" && s.misses != nil {
		if _, err := s.cron.AddFunc(s.cfg.MissSweepSpec, s.runMissSweep); err != nil {
			return fmt.Errorf("failed to add miss sweep job: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("reminder scheduler started")

	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *ReminderScheduler) Stop() {
	s.logger.Info("stopping reminder scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("reminder scheduler stopped")
}

func (s *ReminderScheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.TickTimeout)
	defer cancel()

	if _, err := s.RunTick(ctx, s.now()); err != nil {
		s.logger.Error("reminder tick failed", zap.Error(err))
	}
}

func (s *ReminderScheduler) runMissSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.RunMissSweep(ctx, s.now()); err != nil {
		s.logger.Error("miss sweep failed", zap.Error(err))
	}
}

// RunTick finds the reminders due at now and publishes each one at most
// once per habit and local day. Reminders whose publish failed on an earlier
// tick are offered again until their local day ends. It returns the number
// published.
func (s *ReminderScheduler) RunTick(ctx context.Context, now time.Time) (published int, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveTick(metrics.JobReminders, time.Since(start), err) }()

	reminders, err := s.detector.DueReminders(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to detect due habits: %w", err)
	}
	s.metrics.ReminderDue(len(reminders))

	retries := s.takeRetries(ctx, now, reminders)
	s.metrics.ReminderRetried(len(retries))

	batch := append(reminders, retries...)
	for i, reminder := range batch {
		if err := ctx.Err(); err != nil {
			for _, r := range batch[i:] {
				s.keepForRetry(r)
			}
			return published, err
		}
		if s.deliver(ctx, reminder) {
			published++
		}
	}

	if len(reminders)+len(retries) > 0 {
		s.logger.Info("reminder tick finished",
			zap.Time("now", now.UTC()),
			zap.Int("due", len(reminders)),
			zap.Int("retried", len(retries)),
			zap.Int("published", published),
		)
	}

	return published, nil
}

func (s *ReminderScheduler) deliver(ctx context.Context, reminder entity.Reminder) bool {
	log := s.logger.With(
		zap.String("habit_id", reminder.HabitID.String()),
		zap.String("local_date", reminder.LocalDate),
	)

	// Without the guard the reminder still goes out; consumers tolerate
	// at-least-once delivery
	guarded := true
	acquired, err := s.guard.Acquire(ctx, reminder.HabitID, reminder.LocalDate)
	switch {
	case err != nil:
		log.Warn("fire guard unavailable, publishing unguarded", zap.Error(err))
		s.metrics.ReminderFailed()
		guarded = false
	case !acquired:
		log.Debug("reminder already sent for this local day")
		s.metrics.ReminderSuppressed()
		return false
	}

	if err := s.publisher.PublishReminder(ctx, reminder); err != nil {
		log.Error("failed to publish reminder, will retry on the next tick", zap.Error(err))
		s.metrics.ReminderFailed()
		if guarded {
			if relErr := s.guard.Release(context.WithoutCancel(ctx), reminder.HabitID, reminder.LocalDate); relErr != nil {
				log.Warn("failed to release fire guard", zap.Error(relErr))
			}
		}
		s.keepForRetry(reminder)
		return false
	}

	s.metrics.ReminderPublished()
	return true
}

func retryKey(r entity.Reminder) string {
	return r.HabitID.String() + "|" + r.LocalDate
}

func (s *ReminderScheduler) keepForRetry(reminder entity.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retries[retryKey(reminder)] = reminder
}

// takeRetries removes and returns the failed reminders that are still worth
// sending at now: their local day has not ended, the fresh batch does not
// already carry them and the habit is not done yet.
func (s *ReminderScheduler) takeRetries(ctx context.Context, now time.Time, fresh []entity.Reminder) []entity.Reminder {
	s.mu.Lock()
	pending := s.retries
	s.retries = make(map[string]entity.Reminder)
	s.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	for _, r := range fresh {
		delete(pending, retryKey(r))
	}

	out := make([]entity.Reminder, 0, len(pending))
	for _, r := range pending {
		log := s.logger.With(
			zap.String("habit_id", r.HabitID.String()),
			zap.String("local_date", r.LocalDate),
		)

		local, err := localtime.UTCToLocal(now, r.Timezone)
		if err != nil || local.Date.String() != r.LocalDate {
			log.Warn("dropping unsent reminder, its local day is over")
			continue
		}

		if s.completions != nil {
			done, err := s.completions.WasDoneOnLocalDay(ctx, r.HabitID, local.Date, r.Timezone)
			if err != nil {
				log.Warn("failed to check completion before retry", zap.Error(err))
			} else if done {
				log.Debug("habit done since the failed reminder, not retrying")
				continue
			}
		}

		out = append(out, r)
	}

	// Map iteration is random; keep retries in due order for the consumer
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueAt.Equal(out[j].DueAt) {
			return out[i].DueAt.Before(out[j].DueAt)
		}
		return out[i].HabitID.String() < out[j].HabitID.String()
	})

	return out
}

// RunMissSweep records MISSED logs for days that ended without a log.
func (s *ReminderScheduler) RunMissSweep(ctx context.Context, now time.Time) (recorded int, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveTick(metrics.JobMissSweep, time.Since(start), err) }()

	recorded, err = s.misses.RecordMissed(ctx, now)
	s.metrics.MissedRecorded(recorded)
	if err != nil {
		return recorded, fmt.Errorf("failed to record missed days: %w", err)
	}

	return recorded, nil
}
