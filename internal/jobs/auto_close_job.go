package jobs

import (
	"context"
	"log/slog"
	"time"

	"replenish/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoCloseJob runs the daily sweep that closes orders whose receipt
// confirmation deadline has elapsed. The sweep is idempotent, so overlapping
// runs or restarts are harmless.
type AutoCloseJob struct {
	handler  commands.CloseDueOrdersCommandHandler
	cron     *cron.Cron
	cronSpec string
	logger   *slog.Logger
}

// NewAutoCloseJob creates the auto-close job with the given cron spec,
// typically one run per day shortly after midnight.
func NewAutoCloseJob(handler commands.CloseDueOrdersCommandHandler, cronSpec string, logger *slog.Logger) *AutoCloseJob {
	return &AutoCloseJob{
		handler:  handler,
		cron:     cron.New(),
		cronSpec: cronSpec,
		logger:   logger.With("component", "auto_close_job"),
	}
}

// Start schedules the sweep.
func (j *AutoCloseJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd, err := commands.NewCloseDueOrdersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-close sweep could not be constructed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Auto-close sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-close job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the job.
func (j *AutoCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-close job stopped")
}
