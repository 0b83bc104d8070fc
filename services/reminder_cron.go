package services

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const scheduledRunTimeout = 5 * time.Minute

// StartScheduler runs TriggerReminders on a standard 5-field cron spec,
// evaluated in loc. A run that is still going when the next one is due is
// skipped.
func (s *ReminderService) StartScheduler(spec string, loc *time.Location) error {
	if s.cron != nil {
		return errors.New("reminder scheduler already started")
	}
	if loc == nil {
		loc = time.Local
	}

	logger := cronLogger{entry: s.log.WithField("component", "reminder-cron")}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		if _, err := s.TriggerReminders(ctx); err != nil {
			logger.entry.WithError(err).Error("Scheduled reminder trigger failed")
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	s.cron = c
	logger.entry.WithField("spec", spec).Info("Reminder scheduler started")
	return nil
}

// StopScheduler waits for a running trigger to finish.
func (s *ReminderService) StopScheduler() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}

type cronLogger struct {
	entry *logrus.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(kvFields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithError(err).WithFields(kvFields(keysAndValues)).Error(msg)
}

func kvFields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
