package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(Options{Registerer: reg})
	require.NoError(t, err)

	m.ObserveTick(JobReminders, 120*time.Millisecond, nil)
	m.ObserveTick(JobReminders, time.Second, errors.New("boom"))
	m.ReminderDue(3)
	m.ReminderPublished()
	m.ReminderPublished()
	m.ReminderSuppressed()
	m.ReminderRetried(2)
	m.HabitSkipped()
	m.MissedRecorded(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticks.WithLabelValues(JobReminders, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticks.WithLabelValues(JobReminders, "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.remindersDue))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.remindersPublished))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remindersSuppressed))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.remindersFailed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.remindersRetried))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.habitsSkipped))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.missedRecorded))
	assert.Equal(t, 1, testutil.CollectAndCount(m.tickDuration))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(Options{Registerer: reg})
	require.NoError(t, err)
	second, err := New(Options{Registerer: reg})
	require.NoError(t, err)

	first.ReminderPublished()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.remindersPublished))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *SchedulerMetrics
	assert.NotPanics(t, func() {
		m.ObserveTick(JobMissSweep, time.Second, nil)
		m.ReminderDue(1)
		m.ReminderFailed()
		m.MissedRecorded(2)
	})
}
