package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/provider"
	"github.com/David-iadg/consult-ia/internal/queue"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContactNotification, c.handleContactNotification)
}

func (c *Consumer) handleContactNotification(_ context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_contact_notification_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseContactNotificationPayload(task)
	if err != nil {
		logger.Warnw("worker_contact_notification_unmarshal_failed", "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if payload.SubmissionID == 0 {
		logger.Debugw("worker_contact_notification_skip_invalid_payload", "submission_id", payload.SubmissionID)
		return nil
	}
	if c.ContactService == nil {
		return nil
	}
	err = c.ContactService.SendNotification(payload.SubmissionID, payload.Locale)
	switch {
	case err == nil:
		logger.Infow("worker_contact_notification_sent", "submission_id", payload.SubmissionID)
		return nil
	case errors.Is(err, service.ErrEmailServiceDisabled),
		errors.Is(err, service.ErrEmailServiceNotConfigured),
		errors.Is(err, service.ErrNotFound):
		logger.Debugw("worker_contact_notification_skipped", "submission_id", payload.SubmissionID, "reason", err.Error())
		return nil
	default:
		logger.Warnw("worker_contact_notification_send_failed", "submission_id", payload.SubmissionID, "error", err)
		return err
	}
}
