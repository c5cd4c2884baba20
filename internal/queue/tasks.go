package queue

import (
	"encoding/json"

	"github.com/David-iadg/consult-ia/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotification 联系表单通知邮件任务
	TaskContactNotification = constants.TaskContactNotification
)

// ContactNotificationPayload 联系表单通知任务载荷
type ContactNotificationPayload struct {
	SubmissionID uint   `json:"submission_id"`
	Locale       string `json:"locale"`
}

// NewContactNotificationTask 创建联系表单通知任务
func NewContactNotificationTask(payload ContactNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotification, body), nil
}

// ParseContactNotificationPayload 解析任务载荷
func ParseContactNotificationPayload(task *asynq.Task) (ContactNotificationPayload, error) {
	var payload ContactNotificationPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
