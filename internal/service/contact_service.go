package service

import (
	"errors"

	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/queue"
	"github.com/David-iadg/consult-ia/internal/repository"
)

// ContactService 联系表单服务
type ContactService struct {
	repo        repository.ContactRepository
	queueClient *queue.Client
	email       *EmailService
}

// NewContactService 创建联系表单服务
func NewContactService(repo repository.ContactRepository, queueClient *queue.Client, email *EmailService) *ContactService {
	return &ContactService{repo: repo, queueClient: queueClient, email: email}
}

// SubmitContactInput 联系表单输入
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Locale  string
}

// Submit 保存提交记录并触发管理员通知，通知失败不影响提交结果
func (s *ContactService) Submit(input SubmitContactInput) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.repo.Create(&submission); err != nil {
		return nil, err
	}
	s.notify(&submission, input.Locale)
	return &submission, nil
}

// List 提交记录，按日期倒序
func (s *ContactService) List() ([]models.ContactSubmission, error) {
	return s.repo.List()
}

// SendNotification 发送指定提交记录的通知邮件，供队列消费者调用
func (s *ContactService) SendNotification(submissionID uint, locale string) error {
	if !s.email.Enabled() {
		return ErrEmailServiceDisabled
	}
	submission, err := s.repo.GetByID(submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrNotFound
	}
	return s.email.SendContactNotification(submission, locale)
}

func (s *ContactService) notify(submission *models.ContactSubmission, locale string) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueContactNotification(queue.ContactNotificationPayload{
			SubmissionID: submission.ID,
			Locale:       locale,
		})
		if err != nil {
			logger.Warnw("contact_notification_enqueue_failed", "submission_id", submission.ID, "error", err)
		}
		return
	}
	if !s.email.Enabled() {
		return
	}
	if err := s.email.SendContactNotification(submission, locale); err != nil {
		if errors.Is(err, ErrEmailServiceNotConfigured) {
			logger.Debugw("contact_notification_skipped", "submission_id", submission.ID, "reason", err.Error())
			return
		}
		logger.Warnw("contact_notification_send_failed", "submission_id", submission.ID, "error", err)
	}
}
