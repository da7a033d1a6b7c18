package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Job names used as the "job" label.
const (
	JobReminders = "reminders"
	JobMissSweep = "miss_sweep"
)

// Options controls construction of the scheduler collectors.
type Options struct {
	Registerer prometheus.Registerer
	Namespace  string
	Buckets    []float64
}

// SchedulerMetrics wraps the Prometheus collectors of the reminder pipeline.
type SchedulerMetrics struct {
	ticks               *prometheus.CounterVec
	tickDuration        *prometheus.HistogramVec
	remindersDue        prometheus.Counter
	remindersPublished  prometheus.Counter
	remindersSuppressed prometheus.Counter
	remindersFailed     prometheus.Counter
	remindersRetried    prometheus.Counter
	habitsSkipped       prometheus.Counter
	missedRecorded      prometheus.Counter
}

// New constructs collectors and registers them with the supplied registerer.
// Collectors already registered under the same name are reused.
func New(opts Options) (*SchedulerMetrics, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "habit_reminder"
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      name,
			Help:      help,
		})
	}

	m := &SchedulerMetrics{}
	var err error

	if m.ticks, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "ticks_total",
		Help:      "Scheduler job runs partitioned by job and result.",
	}, []string{"job", "result"})); err != nil {
		return nil, err
	}

	if m.tickDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "tick_duration_seconds",
		Help:      "Duration of scheduler job runs in seconds.",
		Buckets:   buckets,
	}, []string{"job"})); err != nil {
		return nil, err
	}

	if m.remindersDue, err = register(reg, counter("reminders_due_total", "Habits found due by the reminder job.")); err != nil {
		return nil, err
	}
	if m.remindersPublished, err = register(reg, counter("reminders_published_total", "Reminders written to Kafka.")); err != nil {
		return nil, err
	}
	if m.remindersSuppressed, err = register(reg, counter("reminders_suppressed_total", "Due reminders dropped because the habit already fired for its local day.")); err != nil {
		return nil, err
	}
	if m.remindersFailed, err = register(reg, counter("reminders_failed_total", "Due reminders that could not be guarded or published.")); err != nil {
		return nil, err
	}
	if m.remindersRetried, err = register(reg, counter("reminders_retried_total", "Failed reminders offered again on a later tick.")); err != nil {
		return nil, err
	}
	if m.habitsSkipped, err = register(reg, counter("habits_skipped_total", "Habits skipped during due detection because of an error.")); err != nil {
		return nil, err
	}
	if m.missedRecorded, err = register(reg, counter("missed_recorded_total", "MISSED logs written by the miss sweep.")); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(C)
			if !ok {
				return c, fmt.Errorf("existing collector has wrong type %T", already.ExistingCollector)
			}
			return existing, nil
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// ObserveTick records one job run.
func (m *SchedulerMetrics) ObserveTick(job string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ticks.WithLabelValues(job, result).Inc()
	m.tickDuration.WithLabelValues(job).Observe(duration.Seconds())
}

func (m *SchedulerMetrics) ReminderDue(n int) {
	if m != nil {
		m.remindersDue.Add(float64(n))
	}
}

func (m *SchedulerMetrics) ReminderPublished() {
	if m != nil {
		m.remindersPublished.Inc()
	}
}

func (m *SchedulerMetrics) ReminderSuppressed() {
	if m != nil {
		m.remindersSuppressed.Inc()
	}
}

func (m *SchedulerMetrics) ReminderFailed() {
	if m != nil {
		m.remindersFailed.Inc()
	}
}

func (m *SchedulerMetrics) ReminderRetried(n int) {
	if m != nil {
		m.remindersRetried.Add(float64(n))
	}
}

func (m *SchedulerMetrics) HabitSkipped() {
	if m != nil {
		m.habitsSkipped.Inc()
	}
}

func (m *SchedulerMetrics) MissedRecorded(n int) {
	if m != nil {
		m.missedRecorded.Add(float64(n))
	}
}

// Server exposes the registry over HTTP.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer creates the /metrics endpoint for gatherer
func NewServer(port int, path string, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		s.logger.Info("metrics server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
