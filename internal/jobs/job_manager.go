package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/intake"
)

// JobManager starts and stops every scheduled job of the application.
type JobManager struct {
	clientOrderIntakeJob *ClientOrderIntakeJob
}

func NewJobManager(queue *intake.Queue, placeHandler placementHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		clientOrderIntakeJob: NewClientOrderIntakeJob(queue, placeHandler, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.clientOrderIntakeJob.Start(); err != nil {
		return fmt.Errorf("failed to start client order intake job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.clientOrderIntakeJob.Stop()
}
