package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one unit of work run by the loop.
type Job func(ctx context.Context)

// Loop runs a job, then waits until the schedule's next activation.
// The next activation is computed after the job returns, so runs never overlap
// and cron.Every(d) behaves as a fixed sleep of d between runs.
type Loop struct {
	schedule cron.Schedule
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewLoop(schedule cron.Schedule, logger logrus.FieldLogger) *Loop {
	return &Loop{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes job immediately and then per schedule until ctx is done.
func (l *Loop) Run(ctx context.Context, job Job) {
	l.logger.Info("Starting poll loop")
	for {
		job(ctx)

		now := l.now()
		next := l.schedule.Next(now)
		if next.IsZero() {
			l.logger.Warn("Schedule has no further activations, stopping poll loop")
			return
		}
		wait := next.Sub(now)
		l.logger.WithField("next_run", next.Format(time.RFC3339)).Debugf("Sleeping for %s", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.logger.Info("Poll loop stopped")
			return
		case <-timer.C:
		}
	}
}
