package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/session"
)

// SessionSweeperJob periodically removes expired sessions so memory stays
// bounded through long idle periods, when the lazy sweep on create never runs.
type SessionSweeperJob struct {
	store    *session.Store
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewSessionSweeperJob(store *session.Store, schedule string, logger *zap.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:    store,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start begins the scheduled sweep
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if removed := j.RunSweep(); removed > 0 {
			j.logger.Info("Background sweep removed expired sessions", zap.Int("removed", removed))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Session sweeper started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduled sweep
func (j *SessionSweeperJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
		j.logger.Info("Session sweeper stopped")
	}
}

// RunSweep performs a single sweep and returns how many sessions were removed
func (j *SessionSweeperJob) RunSweep() int {
	return j.store.Sweep()
}
