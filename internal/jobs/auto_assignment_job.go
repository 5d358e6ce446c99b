package jobs

import (
	"context"
	"log/slog"

	"lastmile/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAutoAssignmentSchedule runs the rule engine once a minute.
const DefaultAutoAssignmentSchedule = "0 * * * * *"

// AutoAssignmentJob periodically runs the assignment rules against the
// unassigned backlog. Every run is recorded as a batch in the audit log.
type AutoAssignmentJob struct {
	handler  commands.RunAssignmentRulesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewAutoAssignmentJob creates a job that executes assignment rules on the
// given cron schedule. An empty schedule falls back to
// DefaultAutoAssignmentSchedule.
func NewAutoAssignmentJob(
	handler commands.RunAssignmentRulesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	if schedule == "" {
		schedule = DefaultAutoAssignmentSchedule
	}

	return &AutoAssignmentJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "auto_assignment_job"),
	}
}

// Start begins the auto-assignment job on its schedule.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRunAssignmentRulesCommand("", false, "scheduled run")
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-assignment job misconfigured", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-assignment job failed", "error", err)
			return
		}

		if result.Assigned > 0 {
			j.logger.InfoContext(ctx, "Auto-assignment run completed",
				"assigned", result.Assigned, "batch_id", result.BatchID.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the auto-assignment job.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-assignment job stopped")
}
