package jobs

import (
	"fmt"
	"log/slog"

	"shop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentProgressJob *ShipmentProgressJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceShipmentsHandler commands.AdvanceShipmentsCommandHandler,
	shipmentProgressSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentProgressJob: NewShipmentProgressJob(advanceShipmentsHandler, shipmentProgressSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment progress job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentProgressJob.Stop()
}
