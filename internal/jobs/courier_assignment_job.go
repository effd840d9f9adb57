package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob manages the scheduled dispatch of couriers to orders.
// Runs periodically to match unclaimed pending orders with active couriers.
type CourierAssignmentJob struct {
	handler  commands.AssignCouriersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierAssignmentJob creates a new job for dispatching couriers.
// Uses AssignCouriersCommandHandler to process assignments on the given
// six-field cron schedule.
func NewCourierAssignmentJob(
	handler commands.AssignCouriersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job on its schedule.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAssignCouriersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Courier assignment command rejected", "error", cmdErr)
			return
		}

		// A run with no orders or no couriers succeeds without changes,
		// so every error here is worth logging.
		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
