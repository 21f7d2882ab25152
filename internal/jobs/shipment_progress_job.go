package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentProgressJob periodically records synthetic transit checkpoints for
// every shipped order, standing in for a carrier feed.
type ShipmentProgressJob struct {
	handler commands.AdvanceShipmentsCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentProgressJob creates a job that advances shipments on the given
// cron spec (with a seconds field).
func NewShipmentProgressJob(
	handler commands.AdvanceShipmentsCommandHandler,
	spec string,
	logger *slog.Logger,
) *ShipmentProgressJob {
	return &ShipmentProgressJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_progress_job"),
	}
}

// Start begins the shipment progress job on its schedule.
func (j *ShipmentProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment progress job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment progress job started", "spec", j.spec)
	return nil
}

// Stop stops the shipment progress job.
func (j *ShipmentProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment progress job stopped")
}
