package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/retouchhive/office-backend/internal/pkg/email"
)

const (
	// QueueDefault is the queue all background jobs run on.
	QueueDefault = "default"
	// TaskTypeNoticeBroadcast fans one notice out to every employee
	// mailbox.
	TaskTypeNoticeBroadcast = "notice:broadcast"
)

// NoticeBroadcastPayload carries everything the worker needs so it
// never has to reach back into the notices table.
type NoticeBroadcastPayload struct {
	NoticeID   string   `json:"notice_id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}

// NewNoticeBroadcastTask constructs the broadcast task for enqueueing.
func NewNoticeBroadcastTask(payload NoticeBroadcastPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal broadcast payload: %w", err)
	}
	return asynq.NewTask(TaskTypeNoticeBroadcast, data, asynq.Queue(QueueDefault), asynq.MaxRetry(3)), nil
}

// NoticeBroadcaster handles notice broadcast tasks by delivering the
// email fan-out in the background.
type NoticeBroadcaster struct {
	emailService email.EmailService
	logger       *slog.Logger
}

func NewNoticeBroadcaster(emailService email.EmailService, logger *slog.Logger) *NoticeBroadcaster {
	return &NoticeBroadcaster{emailService: emailService, logger: logger}
}

// ProcessTask implements asynq.Handler. Per-recipient failures are
// swallowed inside the email service; only a payload that cannot be
// decoded aborts the task.
func (b *NoticeBroadcaster) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload NoticeBroadcastPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid broadcast payload: %w", asynq.SkipRetry)
	}

	b.logger.Info("broadcasting notice",
		"notice_id", payload.NoticeID,
		"recipients", len(payload.Recipients),
	)

	if err := b.emailService.SendNoticeBroadcast(payload.Recipients, payload.Title, payload.Body); err != nil {
		return fmt.Errorf("notice broadcast failed: %w", err)
	}
	return nil
}
