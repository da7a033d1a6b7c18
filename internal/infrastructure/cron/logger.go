package cron

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// zapLogger adapts zap to cron.Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ cron.Logger = zapLogger{}

func newCronLogger(logger *zap.Logger) zapLogger {
	return zapLogger{sugar: logger.Sugar()}
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	// SkipIfStillRunning reports an overrun tick as "skip"
	if msg == "skip" {
		l.sugar.Warnw("previous run still in progress, skipping", keysAndValues...)
		return
	}
	// schedule/wake/run chatter
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
