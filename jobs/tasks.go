// Package jobs contains the background task definitions and the Asynq
// worker that runs them.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/skillsenhance/skillsenhance/internal/approvals"
	"github.com/skillsenhance/skillsenhance/internal/support"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTicketAutoClose sweeps resolved support tickets into closed.
	TaskTicketAutoClose = "tickets:autoclose"
	// TaskApprovalReminder logs a reminder when approval requests sit pending.
	TaskApprovalReminder = "approvals:reminder"
)

// TicketAutoClosePayload configures the resolved-ticket sweep.
type TicketAutoClosePayload struct {
	OlderThanHours int `json:"older_than_hours"`
}

// NewTicketAutoCloseTask constructs the sweep task.
func NewTicketAutoCloseTask(payload TicketAutoClosePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTicketAutoClose, data), nil
}

// NewApprovalReminderTask constructs the pending-approvals reminder task.
func NewApprovalReminderTask() *asynq.Task {
	return asynq.NewTask(TaskApprovalReminder, nil)
}

// TaskDeps carries the stores the task handlers operate on.
type TaskDeps struct {
	Tickets   *support.Store
	Approvals *approvals.Store
	Logger    *slog.Logger
}

// HandleTicketAutoClose closes resolved tickets that have been quiet past
// the configured window.
func (d TaskDeps) HandleTicketAutoClose(ctx context.Context, t *asynq.Task) error {
	var payload TicketAutoClosePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.OlderThanHours <= 0 {
		payload.OlderThanHours = 72
	}
	cutoff := time.Now().Add(-time.Duration(payload.OlderThanHours) * time.Hour)
	closed := d.Tickets.CloseResolvedBefore(cutoff)
	if closed > 0 {
		d.Logger.Info("auto-closed resolved tickets", slog.Int("count", closed))
	}
	return nil
}

// HandleApprovalReminder surfaces the pending queue depth so reviewers are
// nudged while email delivery is not wired yet.
func (d TaskDeps) HandleApprovalReminder(ctx context.Context, t *asynq.Task) error {
	pending := d.Approvals.PendingCount()
	if pending > 0 {
		d.Logger.Info("approval requests awaiting review", slog.Int("pending", pending))
	}
	return nil
}
